/*
Package req provides ergonomics for handling an HTTP request.

A Parser decodes the query params of a request into a pointer to a struct
and validates the result.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the query params to fields on the struct ("schema" tags).
Second, validating the data meets requirements ("validate" tags).

Fields whose type implements unitconv.Enumerable can use the "enum" rule.

The parade of errors that may propagate from such a task
are translated to unitconv sentinel errors or ValidationErrors
so handlers can respond consistently.
*/
package req
