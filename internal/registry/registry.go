// Package registry embeds the IANA HTTP Status Code Registry and a small table of
// popular unofficial codes.
//
// The official table is generated from the IANA CSV export:
// https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
package registry

import "github.com/fleetingbytes/http-status-codes2/internal/domain"

//go:generate go run ../../cmd/heman generate --input testdata/http-status-codes-1.csv --skip-header --source https://www.iana.org/assignments/http-status-codes/http-status-codes-1.csv --package registry --var official --output official_gen.go

// Official returns a copy of the IANA registry, in registry order.
func Official() domain.Registry { return official.Clone() }

// Unofficial returns a copy of the unofficial registry.
//
// Thanks go to Evert Pot and his series of posts on HTTP status codes
// (https://evertpot.com/http/).
func Unofficial() domain.Registry { return unofficial.Clone() }

var unofficial = domain.Registry{
	{
		Code:        306,
		Description: "Switch Proxy",
		Reference:   "[draft-cohen-http-305-306-responses-00]",
		Link:        "https://datatracker.ietf.org/doc/html/draft-cohen-http-305-306-responses-00",
	},
	{
		Code:        418,
		Description: "I'm a teapot",
		Reference:   "[RFC2324, Section 2.3.2]",
		Link:        "https://www.rfc-editor.org/rfc/rfc2324.html#section-2.3.2",
	},
	{
		Code:        420,
		Description: "Enhance your calm",
		Reference:   "[Series of posts on HTTP status codes]",
		Link:        "https://evertpot.com/http/420-enhance-your-calm",
	},
	{
		Code:        430,
		Description: "Would Block",
		Reference:   "[draft-nottingham-http-pipeline-01]",
		Link:        "https://datatracker.ietf.org/doc/html/draft-nottingham-http-pipeline-01",
	},
}
