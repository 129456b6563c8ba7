// Package gomap maps Go values to and from tagged text.
//
// Types may implement [IRer] and [IRFromer] to control their mapping.
// Other values go through their yaml or json struct tags, so
//
//	type Item struct {
//		Name  string `json:"name"`
//		Count int    `json:"count,omitempty"`
//	}
//
// dumps as <dict><name><str>...</str></name><count><int>...</int></count></dict>
// with members in field order.
package gomap
