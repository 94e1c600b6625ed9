package command

import "strconv"

// cmdShowMarks implements spec §4.7's "show_marks BOOL", grounded on
// original_source/hayward/commands/show_marks.c: toggles whether marks
// are rendered in window titlebars. internal/view reads Config.ShowMarks
// at render time; this command only flips the setting.
func cmdShowMarks(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("show_marks: expected a boolean")
	}
	b, err := strconv.ParseBool(args[0])
	if err != nil {
		return invalid("show_marks: %v", err)
	}
	if ctx.Config != nil {
		ctx.Config.ShowMarks = b
	}
	return ok()
}
