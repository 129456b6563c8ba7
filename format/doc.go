// Package format names the document formats the tagtext tools read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Suffix()) // ".json"
//
// The tagged-text wire format is [TagTextFormat]; JSON and YAML exist so
// that documents can be bridged in and out of it.
//
// # Related Packages
//
//   - github.com/signadot/tagtext/parse - Parse tagged text to IR
//   - github.com/signadot/tagtext/encode - Encode IR to tagged text
//   - github.com/signadot/tagtext/bridge - JSON and YAML conversion
package format
