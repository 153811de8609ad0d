// FILE: lixenwraith/envload/doc.go

// Package envload extracts KEY=VALUE variables from one or more .env-style
// files, filters them by key, and merges them in order so that later files
// override earlier ones.
//
// Features:
//   - Tolerant line grammar: blank lines, full-line and inline comments,
//     single or double quoted values, loose whitespace around '='
//   - Regular expression key filter (search semantics)
//   - Insertion-ordered merge: a key keeps its first position, takes its last value
//   - Combined "key=value" output for build arguments
//   - Missing files are warnings, not failures
//   - Layered settings: CLI > environment (INPUT_*) > settings file > defaults
//
// Quick Start:
//
//	runner, err := envload.NewBuilder().
//	    WithFiles(".env", ".env.production").
//	    WithFilter("^APP_").
//	    WithHost(myHost).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := runner.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Combined)
//
// Value decoding:
//
//	KEY=plain value        -> plain value
//	KEY=value # comment    -> value
//	KEY="a # b" trailing   -> a # b
//	KEY='single'           -> single
//	KEY="unterminated      -> "unterminated
//
// An unterminated quote is not an error: the raw value is kept, leading
// quote included.
//
// Side effects (masking, per-key outputs, exporting, the combined output) go
// through a Host. The parser and merge are pure and usable without one:
//
//	src := envload.Source{Locator: "inline", Content: "A=1\nB=2"}
//	table := envload.Merge(envload.ProcessSource(src, nil))
package envload
