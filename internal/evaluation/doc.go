// Package evaluation holds the storage-independent rules of a course
// evaluation: the rating scale, answer validation, wizard progression and the
// averages reported to administrators.
package evaluation
