package upload

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

// V1SignatureRequest holds the parameters the upload widget asks to sign
type V1SignatureRequest struct {
	ParamsToSign map[string]interface{} `json:"paramsToSign"`
}

// V1SignatureResponse holds the signature
type V1SignatureResponse struct {
	Signature string `json:"signature"`
}

// SignParametersV1 signs widget upload parameters with the API secret
func (h *HandlerV1) SignParametersV1(w http.ResponseWriter, r *http.Request) {
	var req V1SignatureRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid request body: %w", domain.ErrValidation, err), "Signature failed")
		return
	}
	if len(req.ParamsToSign) == 0 {
		h.writeError(w, fmt.Errorf("%w: paramsToSign is required", domain.ErrValidation), "Signature failed")
		return
	}

	params, err := stringParams(req.ParamsToSign)
	if err != nil {
		h.writeError(w, err, "Signature failed")
		return
	}

	signature, err := h.uploadService.SignParameters(r.Context(), params)
	if err != nil {
		h.writeError(w, err, "Signature failed")
		return
	}

	h.writeJSON(w, http.StatusOK, V1SignatureResponse{Signature: signature})
}

// stringParams flattens JSON values the way they are serialized before signing.
// Arrays are joined with commas.
func stringParams(raw map[string]interface{}) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := stringParam(value)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %w", domain.ErrValidation, key, err)
		}
		params[key] = s
	}
	return params, nil
}

func stringParam(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, err := stringParam(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
