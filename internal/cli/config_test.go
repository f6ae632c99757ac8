package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/prodlist/internal/cli"
)

// Tests for print-config command.

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "fixtures=(built-in)")
	cli.AssertContains(t, stdout, "color=never")
	cli.AssertContains(t, stdout, "history=(disabled)")
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_Print_Config_From_Config_File_With_Comments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".prodlist.json", `{
		// This is a comment
		"fixtures": "data/products.json",
		"color": "always",
	}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "fixtures="+filepath.Join(c.Dir, "data/products.json"))
	cli.AssertContains(t, stdout, "color=always")
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".prodlist.json"))
}

func Test_Print_Config_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("custom.json", `{"log_level": "info"}`)

	stdout := c.MustRun("-c", "custom.json", "print-config")
	cli.AssertContains(t, stdout, "log_level=info")
}

func Test_Print_Config_DotEnv_And_Flags_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".env", "PRODLIST_FIXTURES=from-dotenv.json\nPRODLIST_HISTORY=hist\n")

	stdout := c.MustRun("--fixtures=from-flag.json", "print-config")

	cli.AssertContains(t, stdout, "fixtures="+filepath.Join(c.Dir, "from-flag.json"))
	cli.AssertContains(t, stdout, "history="+filepath.Join(c.Dir, "hist"))
	cli.AssertContains(t, stdout, "dotenv="+filepath.Join(c.Dir, ".env"))
}

func Test_Print_Config_Global_Config_When_XDG_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := t.TempDir()
	c.Env["XDG_CONFIG_HOME"] = xdg

	global := filepath.Join(xdg, "prodlist", "config.json")
	writeGlobal(t, global, `{"color": "always"}`)

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "color=always")
	cli.AssertContains(t, stdout, "global_config="+global)
}

// Tests for config errors.

func Test_Config_Explicit_Config_Not_Found_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c", "nonexistent.json", "print-config")
	cli.AssertContains(t, stderr, "config file not found")
}

func Test_Config_Invalid_Color_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--color=rainbow", "ls")
	cli.AssertContains(t, stderr, "invalid color value")
}

func Test_Config_Invalid_Log_Level_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["PRODLIST_LOG_LEVEL"] = "chatty"

	stderr := c.MustFail("ls")
	cli.AssertContains(t, stderr, "invalid log level")
}
