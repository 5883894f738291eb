package routine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// HTTPService - адаптер Service поверх REST API бэкенда
// (/api/routines).
type HTTPService struct {
	base   string
	client *http.Client
}

func NewHTTPService(baseURL string) *HTTPService {
	return &HTTPService{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPService) List(ctx context.Context) ([]*models.Routine, error) {
	var out []*models.Routine
	if err := s.do(ctx, "list", http.MethodGet, "/api/routines", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPService) Create(ctx context.Context, r *models.Routine) (string, error) {
	var created models.Routine
	if err := s.do(ctx, "create", http.MethodPost, "/api/routines", r, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *HTTPService) Update(ctx context.Context, id string, r *models.Routine) error {
	return s.do(ctx, "update", http.MethodPut, "/api/routines/"+id, r, nil)
}

func (s *HTTPService) Delete(ctx context.Context, id string) error {
	return s.do(ctx, "delete", http.MethodDelete, "/api/routines/"+id, nil, nil)
}

func (s *HTTPService) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &ServiceError{Op: op, Err: err}
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.base+path, rd)
	if err != nil {
		return &ServiceError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ServiceError{Op: op, Err: fmt.Errorf("разбор ответа: %w", err)}
		}
	}
	return nil
}

// serverMessage достает поле error из тела ответа, как его отдают
// обработчики gin.
func serverMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Error == "" {
		return "неизвестная ошибка сервера"
	}
	return payload.Error
}
