package member

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Directory резолвит слабую ссылку assignedMemberId в имя клиента
// через /api/members. Только чтение, список кэшируется после первого
// обращения.
type Directory struct {
	base   string
	client *http.Client
	names  map[string]string
}

func NewDirectory(baseURL string) *Directory {
	return &Directory{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve возвращает имя клиента по ID. Пустая строка без ошибки
// означает, что клиента нет: его могли удалить независимо от
// программы, ссылка слабая.
func (d *Directory) Resolve(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if d.names == nil {
		if err := d.refresh(ctx); err != nil {
			return "", err
		}
	}
	return d.names[id], nil
}

func (d *Directory) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.base+"/api/members", nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("members: сервер вернул %d", resp.StatusCode)
	}

	var members []*models.Member
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return err
	}

	d.names = make(map[string]string, len(members))
	for _, m := range members {
		d.names[m.ID] = m.Name
	}
	return nil
}
