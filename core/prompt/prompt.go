// Package prompt renders the shell prompt from a PS1 style template.
package prompt

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/pipeshell/psh/core/config"
)

const (
	EnvUser = "USER"
)

// Prompt renders the text shown before each line of input.
type Prompt struct {
	Template   string
	TimeFormat string

	User     string
	Hostname string
	Home     string
	Root     bool

	Colors    *ColorPrinter
	Now       func() time.Time
	GitBranch func(dir string) string
}

// New creates a prompt for the current user from the configuration.
func New(cfg *config.Configuration, colors *ColorPrinter) *Prompt {
	username := os.Getenv(EnvUser)
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
	}
	hostname, _ := os.Hostname()
	home, _ := os.UserHomeDir()

	return &Prompt{
		Template:   cfg.Prompt,
		TimeFormat: cfg.TimeFormat,
		User:       username,
		Hostname:   hostname,
		Home:       home,
		Root:       os.Geteuid() == 0,
		Colors:     colors,
		Now:        time.Now,
		GitBranch:  GitBranch,
	}
}

// Render expands the template for the working directory wd.
//
//	\u user       \h short hostname   \w wd with ~ for home   \W base of \w
//	\t time       \g git branch       \$ # for root, $ otherwise
//	\\ backslash
func (p *Prompt) Render(wd string) string {
	dollar := "$"
	if p.Root {
		dollar = "#"
	}

	var pairs []string
	add := func(escape string, value func() string) {
		if strings.Contains(p.Template, escape) {
			pairs = append(pairs, escape, value())
		}
	}

	add(`\\`, func() string { return `\` })
	add(`\u`, func() string { return p.Colors.Sprint(ColorGreen, p.User) })
	add(`\h`, func() string { return p.Colors.Sprint(ColorGreen, strings.SplitN(p.Hostname, ".", 2)[0]) })
	add(`\w`, func() string { return p.Colors.Sprint(ColorBlue, p.tildeDir(wd)) })
	add(`\W`, func() string { return p.Colors.Sprint(ColorBlue, p.baseDir(wd)) })
	add(`\t`, func() string { return p.Colors.Sprint(ColorGreen, p.Now().Format(p.TimeFormat)) })
	add(`\g`, func() string {
		if p.GitBranch == nil {
			return ""
		}
		return p.Colors.Sprint(ColorBoldCyan, p.GitBranch(wd))
	})
	add(`\$`, func() string { return dollar })

	return strings.NewReplacer(pairs...).Replace(p.Template)
}

func (p *Prompt) tildeDir(wd string) string {
	switch {
	case p.Home == "" || p.Home == "/":
		return wd
	case wd == p.Home:
		return "~"
	case strings.HasPrefix(wd, p.Home+string(filepath.Separator)):
		return "~" + strings.TrimPrefix(wd, p.Home)
	default:
		return wd
	}
}

func (p *Prompt) baseDir(wd string) string {
	if wd == p.Home && p.Home != "" {
		return "~"
	}
	return filepath.Base(wd)
}
