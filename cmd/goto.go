package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/quicknav"
	"github.com/grovetools/quicknav/cli"
	"github.com/grovetools/quicknav/editor/nvimedit"
	"github.com/grovetools/quicknav/logging"
	"github.com/grovetools/quicknav/providers/gotoline"
	"github.com/grovetools/quicknav/tui"
	"github.com/grovetools/quicknav/tui/pickerui"
)

var log *logrus.Entry

func init() {
	log = logging.NewLogger("quicknav-cmd")
}

// NewGotoCmd creates the `goto` command: an interactive go-to-line picker
// over a file opened in an embedded Neovim. The picked position is printed
// as file:line:col, suitable for shell pipelines.
func NewGotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goto <file>",
		Short: "Pick a line in a file interactively",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().Bool("use-nvim-config", false, "Load the user's Neovim configuration")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return cli.NewErrorHandler(false).Handle(
				fmt.Errorf("cannot open %s: %w", path, err))
		}

		tui.InitializeTUI()

		useConfig, _ := cmd.Flags().GetBool("use-nvim-config")
		editor, err := nvimedit.Attach(nvimedit.Options{Path: path, UseConfig: useConfig})
		if err != nil {
			return cli.NewErrorHandler(cli.GetOptions(cmd).Verbose).Handle(err)
		}
		defer editor.Close()

		app := newGotoApp(path, editor)
		if _, err := tea.NewProgram(app).Run(); err != nil {
			return err
		}
		app.finish()

		if app.picked != nil {
			fmt.Printf("%s:%d:%d\n", path, app.picked.Line, app.picked.Column)
		}
		return nil
	}

	return cmd
}

// gotoApp hosts the picker and routes its outcome back to the command.
type gotoApp struct {
	picker  *pickerui.Model
	session quicknav.Disposable
	cancel  *quicknav.CancelSource

	picked *quicknav.Position
	done   bool
}

func newGotoApp(path string, editor quicknav.Editor) *gotoApp {
	picker := pickerui.New()

	tracker := quicknav.NewEditorTracker()
	tracker.SetActiveEditor(editor)

	cancel := quicknav.NewCancelSource()
	app := &gotoApp{
		picker:  picker,
		cancel:  cancel,
		session: gotoline.New(tracker).Provide(picker, cancel.Token()),
	}

	// The provider navigates on accept; the app only records the outcome
	// and shuts the program down.
	picker.OnDidAccept(func(ev pickerui.AcceptEvent) {
		if pos, ok := ev.Item.Data.(quicknav.Position); ok {
			app.picked = &pos
		}
		app.done = true
	})
	picker.OnDidCancel(func() {
		cancel.Cancel()
		app.done = true
	})

	return app
}

// finish tears the navigation session down exactly once.
func (a *gotoApp) finish() {
	if a.session != nil {
		a.session.Dispose()
		a.session = nil
	}
}

func (a *gotoApp) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *gotoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.picker.Update(msg)
	if a.done {
		log.WithField("picked", a.picked).Debug("picker finished")
		return a, tea.Quit
	}
	return a, cmd
}

func (a *gotoApp) View() string {
	return a.picker.View()
}
