package signature

// UnknownLabel is reported for files that match no entry.
const UnknownLabel = "Unknown format"

// Result is the outcome of identifying one file.
type Result struct {
	Path  string
	Label string
	Known bool
}

// Describe renders the result the way the scanner prints it.
func (r Result) Describe() string {
	if !r.Known {
		return r.Path + ": " + UnknownLabel
	}
	return r.Path + ": Possible " + r.Label + " file"
}

// Scan identifies each path in order, calling emit as soon as a file is
// classified. The first read failure stops the scan and is returned.
func (t Table) Scan(paths []string, emit func(Result)) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		label, ok, err := t.Identify(path)
		if err != nil {
			return results, err
		}
		res := Result{Path: path, Label: label, Known: ok}
		if !ok {
			res.Label = UnknownLabel
		}
		results = append(results, res)
		if emit != nil {
			emit(res)
		}
	}
	return results, nil
}
