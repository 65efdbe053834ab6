package docs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI3 converts the registered Swagger 2 contract to a validated OpenAPI 3 document.
func OpenAPI3() (*openapi3.T, error) {
	var v2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &v2); err != nil {
		return nil, fmt.Errorf("read swagger contract: %w", err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger contract: %w", err)
	}

	if err = v3.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return v3, nil
}

// OpenAPI3JSON is OpenAPI3 rendered as JSON.
func OpenAPI3JSON() ([]byte, error) {
	doc, err := OpenAPI3()
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
