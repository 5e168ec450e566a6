package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/idilsaglam/packing/internal/ui"
)

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if app.log != nil {
		_ = app.log.Sync()
	}
	if err == nil {
		return 0
	}

	th := app.theme
	if th.Name == "" {
		th = ui.NewTheme("classic", stderr)
	}
	th.Fail(stderr, err.Error())
	if isUsage(err) {
		fmt.Fprintln(stderr, th.Muted.Render("Hint: run `packing --help` for usage"))
		return 2
	}
	return 1
}
