// Package requestlog records replay decisions for inspection.
//
// The replay engine can be handed a Logger; it then records one Entry per
// send, capturing what was asked for, whether anything matched, which store
// position served it, and how close the rejected candidates came. Test
// suites assert against the log; debugging sessions list it.
package requestlog
