package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/brunobiangulo/tgschema/parser"
	"github.com/brunobiangulo/tgschema/schema"
)

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

func TestTypes(t *testing.T) {
	records := []parser.RawRecord{
		{
			Heading:     "User",
			Description: strptr("This object represents a Telegram user or bot."),
			Rows: [][]string{
				{"id", "Integer", "Unique identifier for this user or bot. 64-bit integer"},
				{"first_name", "String", "User's or bot's first name"},
				{"last_name", "String", "Optional. User's or bot's last name", "extra cell"},
			},
		},
		{Heading: "ForceReply"},
	}

	types, err := Types(records)
	if err != nil {
		t.Fatalf("Types: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(types))
	}

	user := types[0]
	if user.Name != "User" || user.Description != "This object represents a Telegram user or bot." {
		t.Errorf("user = %q / %q", user.Name, user.Description)
	}
	want := []schema.Field{
		{Name: "id", Type: schema.Int64(), Description: "Unique identifier for this user or bot. 64-bit integer"},
		{Name: "first_name", Type: schema.String(), Description: "User's or bot's first name"},
		{Name: "last_name", Type: schema.OptionalOf(schema.String()), Description: "User's or bot's last name"},
	}
	if len(user.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(user.Fields))
	}
	for i, f := range user.Fields {
		if f.Name != want[i].Name || !f.Type.Equal(want[i].Type) || f.Description != want[i].Description {
			t.Errorf("field[%d] = %+v, want %+v", i, f, want[i])
		}
	}

	if types[1].Description != "" || len(types[1].Fields) != 0 {
		t.Errorf("ForceReply = %+v, want empty description and no fields", types[1])
	}
}

func TestTypesMalformedRow(t *testing.T) {
	records := []parser.RawRecord{{
		Heading: "Broken",
		Rows:    [][]string{{"id", "Integer"}},
	}}

	types, err := Types(records)
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
	if types != nil {
		t.Errorf("expected no types, got %d", len(types))
	}
}

// ---------------------------------------------------------------------------
// Methods
// ---------------------------------------------------------------------------

func TestMethods(t *testing.T) {
	records := []parser.RawRecord{
		{
			Heading:     "getMe",
			Description: strptr("A simple method for testing your bot's authentication token. Returns basic information about the bot in form of a User object."),
		},
		{
			Heading:     "Formatting options",
			Description: strptr("The Bot API supports basic formatting for messages."),
		},
		{
			Heading:     "sendMessage",
			Description: strptr("Use this method to send text messages. On success, the sent Message is returned."),
			Rows: [][]string{
				{"chat_id", "Integer or String", "Yes", "Unique identifier for the target chat"},
				{"text", "String", "Yes", "Text of the message to be sent"},
				{"parse_mode", "String", "Optional", "Mode for parsing entities in the message text."},
			},
		},
	}

	methods, err := Methods(records)
	if err != nil {
		t.Fatalf("Methods: %v", err)
	}
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name
	}
	if !reflect.DeepEqual(names, []string{"getMe", "sendMessage"}) {
		t.Fatalf("methods = %v", names)
	}

	if !methods[0].ReturnType.Equal(schema.StructOf("User")) {
		t.Errorf("getMe returns %s", methods[0].ReturnType)
	}

	send := methods[1]
	if !send.ReturnType.Equal(schema.StructOf("Message")) {
		t.Errorf("sendMessage returns %s", send.ReturnType)
	}
	wantParams := []schema.Param{
		{Name: "chat_id", Type: schema.ChatID(), Required: schema.RequiredYes},
		{Name: "text", Type: schema.String(), Required: schema.RequiredYes},
		{Name: "parse_mode", Type: schema.ParseMode(), Required: schema.RequiredOptional},
	}
	for i, p := range send.Params {
		w := wantParams[i]
		if p.Name != w.Name || !p.Type.Equal(w.Type) || p.Required != w.Required {
			t.Errorf("param[%d] = %s %s %s, want %s %s %s", i, p.Name, p.Type, p.Required, w.Name, w.Type, w.Required)
		}
	}
}

func TestMethodsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"three cells", []string{"chat_id", "Integer", "Yes"}},
		{"unknown marker", []string{"chat_id", "Integer", "Maybe", "Chat"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Methods([]parser.RawRecord{{Heading: "sendMessage", Rows: [][]string{tt.row}}})
			if !errors.Is(err, ErrMalformedRow) {
				t.Errorf("expected ErrMalformedRow, got %v", err)
			}
		})
	}
}

func TestIsMethodName(t *testing.T) {
	tests := map[string]bool{
		"getMe":               true,
		"sendMessage":         true,
		"setMyCommands":       true,
		"Formatting options":  false,
		"Inline mode methods": false,
		"User":                false,
		"":                    false,
		"éditer":              true,
		"Édition":             false,
		"ünterMethod":         true,
	}
	for heading, want := range tests {
		if got := isMethodName(heading); got != want {
			t.Errorf("isMethodName(%q) = %v, want %v", heading, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// RecentChanges
// ---------------------------------------------------------------------------

func TestRecentChanges(t *testing.T) {
	got := RecentChanges([]parser.RawChange{
		{Heading: "December 29, 2023", Description: strptr("Bot API 7.0"), Items: []string{"Added reactions."}},
		{Heading: "Undated"},
	})
	want := []schema.Change{
		{Date: "December 29, 2023", Version: "Bot API 7.0", Changes: []string{"Added reactions."}},
		{Date: "Undated", Version: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RecentChanges = %+v, want %+v", got, want)
	}
}
