// Package task binds an ordered dataset to a prediction problem definition:
// covariate and outcome roles, an outcome type, optional per-observation
// weights, and an optional temporal fold assignment.
//
// 🚀 What is a Task?
//
//	A Task is the single unit of data every learner consumes. It never owns
//	the numbers twice: fold-restricted training and validation views are
//	read-only windows sharing the parent's column storage, so any number of
//	concurrent trainings can hold the same Task by reference.
//
// ✨ Key guarantees:
//   - Immutability: a Task is constructed once and never mutated; downstream
//     components derive new Tasks instead of editing existing ones.
//   - Order preservation: rows are temporal and are never silently reordered.
//   - Validated construction: unknown columns, empty role sets, and
//     outcome-type/value-domain mismatches fail with ErrInvalidTaskSpec.
//
// ⚙️ Usage:
//
//	tbl, _ := task.NewTable([]string{"lag1", "y"}, map[string][]float64{
//	  "lag1": {0, 1, 2, 3},
//	  "y":    {1, 2, 3, 4},
//	})
//	tk, err := task.New(tbl, []string{"lag1"}, []string{"y"}, task.Continuous,
//	  task.WithFolds(fs))
//
// Fold views:
//
//	train, _ := tk.TrainView(fs[0]) // rows [fs[0].Train.Start, fs[0].Train.End)
//	val, _   := tk.ValView(fs[0])   // strictly later rows
//
// See examples in example_test.go.
package task
