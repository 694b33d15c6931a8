package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"inventory-service/internal/inventory"
)

// --- Request DTOs ---

type registerReq struct {
	Name        string `form:"inventory_name"`
	Description string `form:"description"`
}

func (r registerReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-" form:"-"` // populated from URI param
	Name        string `json:"inventory_name" form:"inventory_name"`
	Description string `json:"description"    form:"description"`
}

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// ---

type searchReq struct {
	ID           idParam `json:"id"           form:"id"`
	IncludePhoto truthy  `json:"includePhoto" form:"includePhoto"`
}

func (r searchReq) toInput() inventory.SearchInput {
	return inventory.SearchInput{
		ID:           string(r.ID),
		IncludePhoto: bool(r.IncludePhoto),
	}
}

// idParam accepts an identifier given either as a JSON string or number.
type idParam string

func (p *idParam) UnmarshalParam(param string) error {
	*p = idParam(param)
	return nil
}

func (p *idParam) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = idParam(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = idParam(n.String())
	return nil
}

// truthy is a checkbox-style flag. Boolean literals are honoured, any other
// non-empty value (such as an HTML checkbox "on") counts as set.
type truthy bool

func parseTruthy(s string) truthy {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return truthy(b)
	}
	return true
}

func (t *truthy) UnmarshalParam(param string) error {
	*t = parseTruthy(param)
	return nil
}

func (t *truthy) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = truthy(val)
	case float64:
		*t = val != 0
	case string:
		*t = parseTruthy(val)
	default:
		*t = true
	}
	return nil
}

// --- Response DTOs ---

type itemResp struct {
	ID          string `json:"id"`
	Name        string `json:"inventory_name"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// photoURL is the retrieval path for an item's photo.
func photoURL(id int64) string {
	return fmt.Sprintf("/inventory/%d/photo", id)
}

func newItemResp(item inventory.Item, withPhoto bool) itemResp {
	resp := itemResp{
		ID:          strconv.FormatInt(item.ID, 10),
		Name:        item.Name,
		Description: item.Description,
	}
	if withPhoto && item.HasPhoto() {
		resp.PhotoURL = photoURL(item.ID)
	}
	return resp
}

func (h *handler) newListResp(out inventory.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item, true)
	}
	return items
}

func (h *handler) newSearchResp(out inventory.SearchOutput) itemResp {
	return newItemResp(out.Item, out.IncludePhoto)
}
