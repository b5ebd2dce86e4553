/*
Package api exposes the unit converter over HTTP.

	GET /api/convert?input=3/2km  converts a combined number and unit
	GET /api/units                lists the supported units
	GET /healthz                  reports liveness

A successful conversion responds with JSON:

	{
		"initNum": 1.5,
		"initUnit": "km",
		"returnNum": 0.93206,
		"returnUnit": "mi",
		"string": "1.5 kilometers converts to 0.93206 miles"
	}

An input that does not parse responds 200 with a plain text description
such as "invalid number", "invalid unit", or "invalid number and unit".
*/
package api
