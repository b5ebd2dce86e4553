package req

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/unitconv"
)

// A queryParamDecoder fills a struct with the values of a set of query params.
type queryParamDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

// decode fills structPtr with params, translating any error into standardized errors.
func (d queryParamDecoder) decode(structPtr any, params url.Values) error {
	if err := d.dec.Decode(structPtr, params); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		// schema reports non-pointer and non-struct destinations as plain errors.
		if strings.HasPrefix(err.Error(), "schema: interface must be a pointer to struct") {
			return fmt.Errorf("%w: %s", unitconv.ErrBadAny, err)
		}

		return fmt.Errorf("%w: %s", unitconv.ErrBadFormat, err)
	}

	keys := make([]string, 0, len(pkgErrs))
	for key := range pkgErrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var validErrs ValidationErrors
	for _, key := range keys {
		switch err := pkgErrs[key].(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// For non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, unitconv.ErrNotImplemented)

		case schema.UnknownKeyError:
			// Unknown keys are ignored by default, but that is configurable.
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// A field whose type has no schema.Converter registered
			// only errors once a url.Values sets a value for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", unitconv.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", unitconv.ErrUnexpected, err)
		}
	}

	return validErrs
}
