/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three ways of responding to an HTTP request:
- rendering JSON data
- rendering plain text
- reporting an error

A handler shapes each response with Fn functional options:

	err := responder.Json(w, r, resp.Code(http.StatusCreated), resp.Data(payload))
*/
package resp
