// --- START OF FINAL REVISED FILE cmd/zh-converter/main.go ---
package main

// main is the entry point for zh-converter. Build metadata (version, commit,
// date) lives in root.go and is set with -ldflags.
func main() {
	Execute()
}

// --- END OF FINAL REVISED FILE cmd/zh-converter/main.go ---
