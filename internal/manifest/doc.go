// Package manifest provides loading and filtering of compile command
// manifests (compile_commands.json). Each manifest entry maps one compiled
// source file to the exact command used to compile it.
//
// # Manifest Format
//
// A manifest is a JSON array of compilation entries:
//
//	[
//	  {
//	    "command": "cc -Iinclude -DNDEBUG -c -o main.o src/main.c",
//	    "file": "/project/src/main.c",
//	    "directory": "/project",
//	    "output": "main.o"
//	  }
//	]
//
// # Usage
//
// Load a manifest, filtered to a source root:
//
//	loader := manifest.NewLoader(manifest.LoaderOptions{SourceRoot: "/project/src"})
//	records, err := loader.Load("compile_commands.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, record := range records {
//	    // Process each record
//	}
//
// Entries whose file lies outside the source root, or whose file matches an
// exclusion filter, are silently dropped; a build manifest routinely names
// out-of-project files (test harnesses, vendored code) that must not appear
// in generated documentation.
//
// # Error Handling
//
// A missing or unparsable manifest is fatal and surfaces as one of the
// domain sentinel errors:
//   - domain.ErrManifestNotFound: manifest file does not exist
//   - domain.ErrInvalidManifest: file is not a valid JSON command database
package manifest
