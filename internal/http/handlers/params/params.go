package params

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UUID returns the named URL parameter if it is a valid UUID.
func UUID(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s", name)
	}
	return id.String(), nil
}
