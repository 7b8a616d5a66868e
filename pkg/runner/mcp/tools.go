package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetDayTool(srv, svc)
	registerGetWeekTool(srv, svc)
	registerSetFocusTool(srv, svc)
	registerSetNoteTool(srv, svc)
	registerToggleFocusTool(srv, svc)
	registerClearFocusTool(srv, svc)
	registerLogMoodTool(srv, svc)
	registerAddOverflowTool(srv, svc)
	registerAddInboxTool(srv, svc)
	registerToggleItemTool(srv, svc)
	registerPromoteTool(srv, svc)
	registerDemoteTool(srv, svc)
	registerShuffleTool(srv, svc)
	registerMoveTaskTool(srv, svc)
}

func withDate() mcp.ToolOption {
	return mcp.WithString("date",
		mcp.Description("Day to act on as YYYY-MM-DD; omit for today."),
	)
}

func withSlot() mcp.ToolOption {
	return mcp.WithString("slot",
		mcp.Required(),
		mcp.Description("Focus slot label."),
		mcp.Enum("Focus 1", "Focus 2", "Focus 3"),
	)
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch a day's focus slots, overflow, and inbox."),
		withDate(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Day(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_week",
		mcp.WithDescription("Summarize the Monday..Sunday week containing a day."),
		withDate(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Week(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetFocusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_focus",
		mcp.WithDescription("Set a focus slot's text; empty text clears the slot."),
		withDate(),
		withSlot(),
		mcp.WithString("text",
			mcp.Description("Task text; empty clears the slot and resets its state."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetFocus(ctx, request.GetString("date", ""), slot, request.GetString("text", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_note",
		mcp.WithDescription("Attach a note to a filled focus slot."),
		withDate(),
		withSlot(),
		mcp.WithString("note",
			mcp.Required(),
			mcp.Description("Note text; empty removes the note."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetNote(ctx, request.GetString("date", ""), slot, request.GetString("note", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleFocusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_focus",
		mcp.WithDescription("Flip a focus slot between open and done."),
		withDate(),
		withSlot(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleFocus(ctx, request.GetString("date", ""), slot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerClearFocusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_focus",
		mcp.WithDescription("Reset a focus slot to empty."),
		withDate(),
		withSlot(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ClearFocus(ctx, request.GetString("date", ""), slot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_mood",
		mcp.WithDescription("Record a day's mood rating."),
		withDate(),
		mcp.WithNumber("mood",
			mcp.Required(),
			mcp.Description("Mood rating from 1 (low) to 5 (high)."),
			mcp.Min(1),
			mcp.Max(5),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mood, err := request.RequireInt("mood")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.LogMood(ctx, request.GetString("date", ""), mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddOverflowTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_overflow",
		mcp.WithDescription("Add a task to a day's overflow list."),
		withDate(),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Task text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AddOverflow(ctx, request.GetString("date", ""), text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddInboxTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_inbox",
		mcp.WithDescription("Add a prioritized task to a day's inbox."),
		withDate(),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Task text."),
		),
		mcp.WithString("priority",
			mcp.Description("Priority tag; unknown values fall back to medium."),
			mcp.Enum("must", "medium", "nice"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AddInbox(ctx, request.GetString("date", ""), text, request.GetString("priority", "medium"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_item",
		mcp.WithDescription("Flip an overflow or inbox item between open and done."),
		withDate(),
		mcp.WithString("compartment",
			mcp.Required(),
			mcp.Description("List holding the item."),
			mcp.Enum("overflow", "inbox"),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the list."),
			mcp.Min(0),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		compartment, err := request.RequireString("compartment")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleItem(ctx, request.GetString("date", ""), compartment, index)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPromoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"promote",
		mcp.WithDescription("Lift an overflow or inbox item into the first empty focus slot."),
		withDate(),
		mcp.WithString("compartment",
			mcp.Required(),
			mcp.Description("List holding the item."),
			mcp.Enum("overflow", "inbox"),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the list."),
			mcp.Min(0),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		compartment, err := request.RequireString("compartment")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Promote(ctx, request.GetString("date", ""), compartment, index)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDemoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"demote",
		mcp.WithDescription("Push a focus slot's task down into overflow or the inbox."),
		withDate(),
		withSlot(),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Destination list."),
			mcp.Enum("overflow", "inbox"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority tag applied when demoting to the inbox."),
			mcp.Enum("must", "medium", "nice"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		target, err := request.RequireString("target")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Demote(ctx, request.GetString("date", ""), slot, target, request.GetString("priority", "medium"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerShuffleTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"shuffle",
		mcp.WithDescription("Transfer an item between overflow and the inbox."),
		withDate(),
		mcp.WithString("from",
			mcp.Required(),
			mcp.Description("List holding the item; it lands in the other one."),
			mcp.Enum("overflow", "inbox"),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the source list."),
			mcp.Min(0),
		),
		mcp.WithString("priority",
			mcp.Description("Priority tag applied when landing in the inbox."),
			mcp.Enum("must", "medium", "nice"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := request.RequireString("from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Shuffle(ctx, request.GetString("date", ""), from, index, request.GetString("priority", "medium"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Reschedule a focus task onto a strictly later day."),
		mcp.WithString("from",
			mcp.Required(),
			mcp.Description("Source day as YYYY-MM-DD."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Target day as YYYY-MM-DD; must be after the source day."),
		),
		withSlot(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := request.RequireString("from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := request.RequireString("to")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		slot, err := request.RequireString("slot")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		source, target, err := svc.MoveTask(ctx, from, to, slot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]*DayDTO{
			"source": source,
			"target": target,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
