package ledger

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/timeutil"
)

// Compartment names a task's home inside a snapshot for drag payloads.
type Compartment string

const (
	CompartmentFocus    Compartment = "focus"
	CompartmentOverflow Compartment = "overflow"
	CompartmentInbox    Compartment = "inbox"
)

// DragPayload identifies a draggable task as an opaque string: the source
// day, the compartment, and the item's label (focus) or index (lists).
type DragPayload struct {
	Date        string      `json:"date"`
	Compartment Compartment `json:"compartment"`
	Label       string      `json:"label,omitempty"`
	Index       int         `json:"index,omitempty"`
}

// EncodeDragPayload packs a payload into the opaque string handed to the
// drag-and-drop transport.
func EncodeDragPayload(p DragPayload) string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeDragPayload unpacks a transport string. Garbage input reports false
// rather than an error; a drop with a bad payload is simply ignored.
func DecodeDragPayload(s string) (DragPayload, bool) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return DragPayload{}, false
	}
	var p DragPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return DragPayload{}, false
	}
	if !timeutil.Valid(p.Date) {
		return DragPayload{}, false
	}
	switch p.Compartment {
	case CompartmentFocus, CompartmentOverflow, CompartmentInbox:
	default:
		return DragPayload{}, false
	}
	return p, true
}

// ResolveDrop routes a decoded drag payload onto a target date. Only focus
// sources can cross days (forward only); overflow and inbox drops resolve
// against the selected day through the usual movement rules.
func (s *Service) ResolveDrop(ctx context.Context, payload, targetDate string) bool {
	p, ok := DecodeDragPayload(payload)
	if !ok {
		return false
	}
	switch p.Compartment {
	case CompartmentFocus:
		return s.MoveTask(ctx, p.Date, targetDate, p.Label)
	case CompartmentOverflow:
		if p.Date != s.Selected() {
			return false
		}
		return s.PromoteOverflow(ctx, p.Index) == day.Moved
	case CompartmentInbox:
		if p.Date != s.Selected() {
			return false
		}
		return s.PromoteInbox(ctx, p.Index) == day.Moved
	}
	return false
}
