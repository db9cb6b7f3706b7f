package usecase

import (
	"context"
	"log/slog"
	"sort"
)

// Action names emitted by the shell's controls.
const (
	ActionPostCreate       = "post.create"
	ActionPostLike         = "post.like"
	ActionPostComment      = "post.comment"
	ActionPostShare        = "post.share"
	ActionPostOptions      = "post.options"
	ActionPostSaveLocation = "post.save_location"
	ActionStoryAdd         = "story.add"
	ActionStoryView        = "story.view"
	ActionStoryArchive     = "story.archive"
	ActionStorySettings    = "story.settings"
	ActionGroupJoin        = "group.join"
	ActionGroupSeeAll      = "group.see_all"
	ActionChatOpen         = "chat.open"
	ActionChatNewMessage   = "chat.new_message"
	ActionChatGroup        = "chat.group"
	ActionChatSettings     = "chat.settings"
	ActionNavOpen          = "nav.open"
	ActionHeaderAction     = "header.action"
	ActionHeaderSearch     = "header.search"
)

// Action is one user interaction with a control.
type Action struct {
	Name   string
	Target string
	Attrs  map[string]string
}

// ActionHook receives every triggered action.
type ActionHook func(Action)

// LogHook returns a hook that records actions on logger.
func LogHook(logger *slog.Logger) ActionHook {
	return func(a Action) {
		if logger == nil {
			return
		}
		attrs := []slog.Attr{slog.String("action", a.Name)}
		if a.Target != "" {
			attrs = append(attrs, slog.String("target", a.Target))
		}
		keys := make([]string, 0, len(a.Attrs))
		for k := range a.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, slog.String(k, a.Attrs[k]))
		}
		logger.LogAttrs(context.Background(), slog.LevelInfo, "ui.action", attrs...)
	}
}

// InteractionService dispatches control activations to a hook.
type InteractionService struct {
	hook ActionHook
}

// NewInteractionService constructs an InteractionService. A nil hook logs to
// the default slog logger.
func NewInteractionService(hook ActionHook) InteractionService {
	if hook == nil {
		hook = func(a Action) { LogHook(slog.Default())(a) }
	}
	return InteractionService{hook: hook}
}

// Trigger reports an action. Empty names are ignored.
func (s InteractionService) Trigger(a Action) {
	if a.Name == "" || s.hook == nil {
		return
	}
	s.hook(a)
}
