// Package reconcile contains the pure outcome arithmetic for a queue
// drain: given every record's upload result, compute which records stay
// queued. No I/O happens here; the sync service gathers the outcomes
// first and writes the survivor list back in a single step.
package reconcile

// Result summarizes one drain batch.
type Result struct {
	Uploaded  int
	Failed    int
	Remaining [][]byte
}

// Apply keeps exactly the records whose upload failed, in their original
// order. errs must be indexed in parallel with records; a nil error means
// the record was confirmed uploaded and must never reappear.
func Apply(records [][]byte, errs []error) Result {
	res := Result{Remaining: make([][]byte, 0, len(records))}
	for i, rec := range records {
		if i < len(errs) && errs[i] == nil {
			res.Uploaded++
			continue
		}
		res.Failed++
		res.Remaining = append(res.Remaining, rec)
	}
	return res
}
