// Package config loads and validates benchmark-suite configuration files.
//
// A config.toml file holds one reserved [framework] block and any number of
// test variant blocks, [main] being the canonical one:
//
//	[framework]
//	name = "Gemini"
//	authors = ["mike@techempower.com"]
//	github = "https://github.com/TechEmpower/gemini"
//
//	[main]
//	urls = { json = "/json", plaintext = "/plaintext" }
//	approach = "Realistic"
//	classification = "Fullstack"
//	platform = "Servlet"
//	webserver = "Resin"
//	os = "Linux"
//	versus = "servlet"
//
// Basic Usage:
//
//	fw, err := config.ParseFramework("frameworks/Java/gemini/config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tests, err := config.ParseTests("frameworks/Java/gemini/config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Test names are always derived, never read from the document: the main
// block is named after the lowercased framework name, every other block
// after "<framework>-<key>".
//
// Language resolution walks a config file's ancestor directories and reads
// the directory above the framework-named one, matching the canonical
// frameworks/<language>/<framework> layout:
//
//	language, err := config.ResolveLanguage(fw, path) // "Java"
//
// All operations are pure transformations of file contents; re-parsing an
// unchanged file yields value-equal results.
package config
