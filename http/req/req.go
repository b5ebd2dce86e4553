package req

import (
	"fmt"
	"net/http"
	"net/url"
)

// A Parser decodes and validates request payloads.
// A Parser is safe for concurrent use.
type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// ParseQueryParams decodes into a pointer to a struct the query param data in params.
// If successful, ParseQueryParams runs validation against the contents,
// returning ValidationErrors, which wrap ErrNotValid, if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("unitconv/http/req: failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("unitconv/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseRequest is ParseQueryParams called with r.URL.Query.
func (p *Parser) ParseRequest(r *http.Request, structPtr any) error {
	return p.ParseQueryParams(r.URL.Query(), structPtr)
}
