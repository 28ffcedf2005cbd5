package question

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entanswer "github.com/yalgashev/survey/internal/repo/answer"
	entianswer "github.com/yalgashev/survey/internal/repo/internshipanswer"
	entiq "github.com/yalgashev/survey/internal/repo/internshipquestion"
	entq "github.com/yalgashev/survey/internal/repo/question"
)

// Catalog selects one of the two question sets.
type Catalog string

const (
	CatalogProfessor  Catalog = "professor"
	CatalogInternship Catalog = "internship"
)

func (c Catalog) Valid() bool {
	return c == CatalogProfessor || c == CatalogInternship
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Question struct {
	ID        uuid.UUID                `json:"id"`
	Catalog   Catalog                  `json:"catalog"`
	Text      evaluation.LocalizedText `json:"text"`
	Type      evaluation.Kind          `json:"question_type"`
	SortOrder int                      `json:"sort_order"`
	IsActive  bool                     `json:"is_active"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// Localized returns the wizard view of q.
func (q Question) Localized() evaluation.Question {
	return evaluation.Question{
		ID:        q.ID,
		Kind:      q.Type,
		SortOrder: q.SortOrder,
		Text:      q.Text,
	}
}

type CreateQuestionRequest struct {
	Text      evaluation.LocalizedText
	Type      evaluation.Kind
	SortOrder int
	IsActive  *bool
}

type UpdateQuestionRequest struct {
	TextEN    *string
	TextUZ    *string
	TextRU    *string
	Type      *evaluation.Kind
	SortOrder *int
	IsActive  *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, catalog Catalog, activeOnly bool) ([]Question, error)
	Get(ctx context.Context, catalog Catalog, id uuid.UUID) (*Question, error)
	Create(ctx context.Context, catalog Catalog, req CreateQuestionRequest) (*Question, error)
	Update(ctx context.Context, catalog Catalog, id uuid.UUID, req UpdateQuestionRequest) (*Question, error)
	Delete(ctx context.Context, catalog Catalog, id uuid.UUID) error
}

type questionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &questionService{db: db}
}

// LoadActive returns the active questions of a catalog ordered by sort order
// then id. It accepts a transactional client so the wizard can read and write
// in the same unit.
func LoadActive(ctx context.Context, db *repo.Client, catalog Catalog) ([]evaluation.Question, error) {
	qs, err := list(ctx, db, catalog, true)
	if err != nil {
		return nil, err
	}
	out := make([]evaluation.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Localized()
	}
	return out, nil
}

func list(ctx context.Context, db *repo.Client, catalog Catalog, activeOnly bool) ([]Question, error) {
	switch catalog {
	case CatalogProfessor:
		q := db.Question.Query()
		if activeOnly {
			q = q.Where(entq.IsActive(true))
		}
		rows, err := q.Order(entq.BySortOrder(), entq.ByID()).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list questions: %w", err)
		}
		out := make([]Question, len(rows))
		for i, r := range rows {
			out[i] = fromProfessorQuestion(r)
		}
		return out, nil

	case CatalogInternship:
		q := db.InternshipQuestion.Query()
		if activeOnly {
			q = q.Where(entiq.IsActive(true))
		}
		rows, err := q.Order(entiq.BySortOrder(), entiq.ByID()).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list internship questions: %w", err)
		}
		out := make([]Question, len(rows))
		for i, r := range rows {
			out[i] = fromInternshipQuestion(r)
		}
		return out, nil
	}
	return nil, ErrUnknownCatalog
}

func (s *questionService) List(ctx context.Context, catalog Catalog, activeOnly bool) ([]Question, error) {
	return list(ctx, s.db, catalog, activeOnly)
}

func (s *questionService) Get(ctx context.Context, catalog Catalog, id uuid.UUID) (*Question, error) {
	var (
		q   Question
		err error
	)
	switch catalog {
	case CatalogProfessor:
		var r *repo.Question
		if r, err = s.db.Question.Get(ctx, id); err == nil {
			q = fromProfessorQuestion(r)
		}
	case CatalogInternship:
		var r *repo.InternshipQuestion
		if r, err = s.db.InternshipQuestion.Get(ctx, id); err == nil {
			q = fromInternshipQuestion(r)
		}
	default:
		return nil, ErrUnknownCatalog
	}
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

func (s *questionService) Create(ctx context.Context, catalog Catalog, req CreateQuestionRequest) (*Question, error) {
	text := evaluation.LocalizedText{
		EN: strings.TrimSpace(req.Text.EN),
		UZ: strings.TrimSpace(req.Text.UZ),
		RU: strings.TrimSpace(req.Text.RU),
	}
	if text.EN == "" || text.UZ == "" || text.RU == "" {
		return nil, ErrTextRequired
	}
	if req.Type == "" {
		req.Type = evaluation.KindRating
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}
	if req.SortOrder < 0 {
		return nil, ErrInvalidSortOrder
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	switch catalog {
	case CatalogProfessor:
		r, err := s.db.Question.Create().
			SetTextEn(text.EN).
			SetTextUz(text.UZ).
			SetTextRu(text.RU).
			SetQuestionType(entq.QuestionType(req.Type)).
			SetSortOrder(req.SortOrder).
			SetIsActive(active).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create question: %w", err)
		}
		q := fromProfessorQuestion(r)
		return &q, nil

	case CatalogInternship:
		r, err := s.db.InternshipQuestion.Create().
			SetTextEn(text.EN).
			SetTextUz(text.UZ).
			SetTextRu(text.RU).
			SetQuestionType(entiq.QuestionType(req.Type)).
			SetSortOrder(req.SortOrder).
			SetIsActive(active).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create internship question: %w", err)
		}
		q := fromInternshipQuestion(r)
		return &q, nil
	}
	return nil, ErrUnknownCatalog
}

func (s *questionService) Update(ctx context.Context, catalog Catalog, id uuid.UUID, req UpdateQuestionRequest) (*Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Type != nil {
		cur, err := s.Get(ctx, catalog, id)
		if err != nil {
			return nil, err
		}
		if cur.Type != *req.Type {
			// Answers keep the shape of the type they were given under.
			inUse, err := answered(ctx, s.db, catalog, id)
			if err != nil {
				return nil, err
			}
			if inUse {
				return nil, ErrTypeLocked
			}
		}
	}

	var (
		q   Question
		err error
	)
	switch catalog {
	case CatalogProfessor:
		upd := s.db.Question.UpdateOneID(id)
		if req.TextEN != nil {
			upd = upd.SetTextEn(strings.TrimSpace(*req.TextEN))
		}
		if req.TextUZ != nil {
			upd = upd.SetTextUz(strings.TrimSpace(*req.TextUZ))
		}
		if req.TextRU != nil {
			upd = upd.SetTextRu(strings.TrimSpace(*req.TextRU))
		}
		if req.Type != nil {
			upd = upd.SetQuestionType(entq.QuestionType(*req.Type))
		}
		if req.SortOrder != nil {
			upd = upd.SetSortOrder(*req.SortOrder)
		}
		if req.IsActive != nil {
			upd = upd.SetIsActive(*req.IsActive)
		}
		var r *repo.Question
		if r, err = upd.Save(ctx); err == nil {
			q = fromProfessorQuestion(r)
		}

	case CatalogInternship:
		upd := s.db.InternshipQuestion.UpdateOneID(id)
		if req.TextEN != nil {
			upd = upd.SetTextEn(strings.TrimSpace(*req.TextEN))
		}
		if req.TextUZ != nil {
			upd = upd.SetTextUz(strings.TrimSpace(*req.TextUZ))
		}
		if req.TextRU != nil {
			upd = upd.SetTextRu(strings.TrimSpace(*req.TextRU))
		}
		if req.Type != nil {
			upd = upd.SetQuestionType(entiq.QuestionType(*req.Type))
		}
		if req.SortOrder != nil {
			upd = upd.SetSortOrder(*req.SortOrder)
		}
		if req.IsActive != nil {
			upd = upd.SetIsActive(*req.IsActive)
		}
		var r *repo.InternshipQuestion
		if r, err = upd.Save(ctx); err == nil {
			q = fromInternshipQuestion(r)
		}

	default:
		return nil, ErrUnknownCatalog
	}

	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("update question: %w", err)
	}
	return &q, nil
}

func (r UpdateQuestionRequest) validate() error {
	for _, t := range []*string{r.TextEN, r.TextUZ, r.TextRU} {
		if t != nil && strings.TrimSpace(*t) == "" {
			return ErrTextRequired
		}
	}
	if r.Type != nil && !r.Type.Valid() {
		return ErrInvalidType
	}
	if r.SortOrder != nil && *r.SortOrder < 0 {
		return ErrInvalidSortOrder
	}
	return nil
}

// Delete refuses while any answer references the question; deactivate it
// instead to hide it from the wizard.
func (s *questionService) Delete(ctx context.Context, catalog Catalog, id uuid.UUID) error {
	if _, err := s.Get(ctx, catalog, id); err != nil {
		return err
	}

	inUse, err := answered(ctx, s.db, catalog, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrQuestionInUse
	}

	if catalog == CatalogProfessor {
		err = s.db.Question.DeleteOneID(id).Exec(ctx)
	} else {
		err = s.db.InternshipQuestion.DeleteOneID(id).Exec(ctx)
	}
	if err != nil {
		switch {
		case repo.IsNotFound(err):
			return ErrQuestionNotFound
		case repo.IsConstraintError(err):
			return ErrQuestionInUse
		}
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

func answered(ctx context.Context, db *repo.Client, catalog Catalog, id uuid.UUID) (bool, error) {
	var (
		ok  bool
		err error
	)
	switch catalog {
	case CatalogProfessor:
		ok, err = db.Answer.Query().Where(entanswer.QuestionID(id)).Exist(ctx)
	case CatalogInternship:
		ok, err = db.InternshipAnswer.Query().Where(entianswer.QuestionID(id)).Exist(ctx)
	default:
		return false, ErrUnknownCatalog
	}
	if err != nil {
		return false, fmt.Errorf("check answers: %w", err)
	}
	return ok, nil
}

func fromProfessorQuestion(r *repo.Question) Question {
	return Question{
		ID:        r.ID,
		Catalog:   CatalogProfessor,
		Text:      evaluation.LocalizedText{EN: r.TextEn, UZ: r.TextUz, RU: r.TextRu},
		Type:      evaluation.Kind(r.QuestionType),
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromInternshipQuestion(r *repo.InternshipQuestion) Question {
	return Question{
		ID:        r.ID,
		Catalog:   CatalogInternship,
		Text:      evaluation.LocalizedText{EN: r.TextEn, UZ: r.TextUz, RU: r.TextRu},
		Type:      evaluation.Kind(r.QuestionType),
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
