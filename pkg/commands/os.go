// Package commands runs the external programs lazyts hands off to, lrelease
// and Qt Linguist among them.
package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/christophe-duc/lazyts/pkg/utils"
	"github.com/go-errors/errors"
	"github.com/jesseduffield/kill"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// Platform stores the os state
type Platform struct {
	os string
}

// OSCommand holds all the os commands
type OSCommand struct {
	Log      *logrus.Entry
	Platform *Platform
	Config   *config.AppConfig
	command  func(string, ...string) *exec.Cmd
	getenv   func(string) string
}

// NewOSCommand os command runner
func NewOSCommand(log *logrus.Entry, config *config.AppConfig) *OSCommand {
	return &OSCommand{
		Log:      log,
		Platform: getPlatform(),
		Config:   config,
		command:  exec.Command,
		getenv:   os.Getenv,
	}
}

// SetCommand sets the command function used by the struct.
// To be used for testing only
func (c *OSCommand) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	c.command = cmd
}

// RunCommandWithOutput wrapper around commands returning their output and error
func (c *OSCommand) RunCommandWithOutput(command string) (string, error) {
	cmd, err := c.ExecutableFromString(command)
	if err != nil {
		return "", err
	}
	before := time.Now()
	output, err := sanitisedCommandOutput(cmd.Output())
	c.Log.Info(fmt.Sprintf("'%s': %s", command, time.Since(before)))
	return output, err
}

// RunCommand runs a command and just returns the error
func (c *OSCommand) RunCommand(command string) error {
	_, err := c.RunCommandWithOutput(command)
	return err
}

// ExecutableFromString takes a string like `lrelease a.ts -qm a.qm` and returns an executable command for it
func (c *OSCommand) ExecutableFromString(commandStr string) (*exec.Cmd, error) {
	splitCmd := str.ToArgv(commandStr)
	if len(splitCmd) == 0 {
		return nil, errors.New("empty command")
	}
	return c.NewCmd(splitCmd[0], splitCmd[1:]...), nil
}

func (c *OSCommand) NewCmd(cmdName string, commandArgs ...string) *exec.Cmd {
	cmd := c.command(cmdName, commandArgs...)
	cmd.Env = os.Environ()
	return cmd
}

func sanitisedCommandOutput(output []byte, err error) (string, error) {
	outputString := string(output)
	if err != nil {
		// errors like 'exit status 1' are not very useful so we'll create an error
		// from stderr if we got an ExitError
		exitError, ok := err.(*exec.ExitError)
		if ok && len(exitError.Stderr) > 0 {
			return outputString, errors.New(string(exitError.Stderr))
		}
		return outputString, WrapError(err)
	}
	return outputString, nil
}

// ReleaseTarget is what the lrelease command template is rendered with
type ReleaseTarget struct {
	File   string
	Output string
}

// QmPath is where lrelease writes the compiled form of a .ts file
func QmPath(tsPath string) string {
	return strings.TrimSuffix(tsPath, filepath.Ext(tsPath)) + ".qm"
}

// Release compiles a .ts file with the configured lrelease command and
// returns the path of the .qm file
func (c *OSCommand) Release(tsPath string) (string, error) {
	target := ReleaseTarget{File: c.Quote(tsPath), Output: c.Quote(QmPath(tsPath))}
	command, err := utils.ApplyTemplate(c.Config.UserConfig.CommandTemplates.Lrelease, target)
	if err != nil {
		return "", err
	}

	if _, err := c.RunCommandWithOutput(command); err != nil {
		return "", err
	}
	return QmPath(tsPath), nil
}

// OpenInLinguist opens a .ts file in the configured editor and waits for it
// to exit. Without a linguist template we fall back to VISUAL, EDITOR, then vi
func (c *OSCommand) OpenInLinguist(tsPath string) error {
	cmd, err := c.editCommand(tsPath)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	c.PrepareForChildren(cmd)

	return WrapError(cmd.Run())
}

func (c *OSCommand) editCommand(tsPath string) (*exec.Cmd, error) {
	commandTemplate := c.Config.UserConfig.CommandTemplates.Linguist
	if commandTemplate != "" {
		command, err := utils.ApplyTemplate(commandTemplate, ReleaseTarget{File: c.Quote(tsPath)})
		if err != nil {
			return nil, err
		}
		return c.ExecutableFromString(command)
	}

	editor := c.getenv("VISUAL")
	if editor == "" {
		editor = c.getenv("EDITOR")
	}
	if editor == "" {
		if err := c.RunCommand("which vi"); err == nil {
			editor = "vi"
		}
	}
	if editor == "" {
		return nil, errors.New("No editor defined in $VISUAL or $EDITOR")
	}

	return c.NewCmd(editor, tsPath), nil
}

// OpenFile opens a file with the configured open command
func (c *OSCommand) OpenFile(filename string) error {
	commandTemplate := c.Config.UserConfig.OS.OpenCommand
	templateValues := map[string]string{
		"filename": c.Quote(filename),
	}

	command := utils.ResolvePlaceholderString(commandTemplate, templateValues)
	return c.RunCommand(command)
}

// Quote wraps a message in platform-specific quotation marks
func (c *OSCommand) Quote(message string) string {
	var quote string
	if c.Platform.os == "windows" {
		quote = `\"`
		message = strings.NewReplacer(
			`"`, `"'"'"`,
			`\"`, `\\"`,
		).Replace(message)
	} else {
		quote = `"`
		message = strings.NewReplacer(
			`\`, `\\`,
			`"`, `\"`,
			`$`, `\$`,
			"`", "\\`",
		).Replace(message)
	}
	return quote + message + quote
}

// Kill kills a process. If the process has Setpgid == true, then we have anticipated that it might spawn its own child processes, so we've given it a process group ID (PGID) equal to its process id (PID) and given its child processes will inherit the PGID, we can kill that group, rather than killing the process itself.
func (c *OSCommand) Kill(cmd *exec.Cmd) error {
	return kill.Kill(cmd)
}

// PrepareForChildren sets Setpgid to true on the cmd, so that when we run it as a subprocess, we can kill its group rather than the process itself. Qt Linguist may be launched through a wrapper script, and killing the wrapper isn't sufficient for killing the editor.
func (c *OSCommand) PrepareForChildren(cmd *exec.Cmd) {
	kill.PrepareForChildren(cmd)
}
