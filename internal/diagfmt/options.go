package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	Color   bool
	Context int8 // extra source lines shown above the primary line
}
