// Code generated by ent, DO NOT EDIT.

package groupprofessor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldCreatedAt, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldGroupID, v))
}

// ProfessorID applies equality check predicate on the "professor_id" field. It's identical to ProfessorIDEQ.
func ProfessorID(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldProfessorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldLTE(FieldCreatedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNotIn(FieldGroupID, vs...))
}

// ProfessorIDEQ applies the EQ predicate on the "professor_id" field.
func ProfessorIDEQ(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldEQ(FieldProfessorID, v))
}

// ProfessorIDNEQ applies the NEQ predicate on the "professor_id" field.
func ProfessorIDNEQ(v uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNEQ(FieldProfessorID, v))
}

// ProfessorIDIn applies the In predicate on the "professor_id" field.
func ProfessorIDIn(vs ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldIn(FieldProfessorID, vs...))
}

// ProfessorIDNotIn applies the NotIn predicate on the "professor_id" field.
func ProfessorIDNotIn(vs ...uuid.UUID) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.FieldNotIn(FieldProfessorID, vs...))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.GroupProfessor {
	return predicate.GroupProfessor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.Group) predicate.GroupProfessor {
	return predicate.GroupProfessor(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProfessor applies the HasEdge predicate on the "professor" edge.
func HasProfessor() predicate.GroupProfessor {
	return predicate.GroupProfessor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfessorTable, ProfessorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfessorWith applies the HasEdge predicate on the "professor" edge with a given conditions (other predicates).
func HasProfessorWith(preds ...predicate.Professor) predicate.GroupProfessor {
	return predicate.GroupProfessor(func(s *sql.Selector) {
		step := newProfessorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupProfessor) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupProfessor) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupProfessor) predicate.GroupProfessor {
	return predicate.GroupProfessor(sql.NotPredicates(p))
}
