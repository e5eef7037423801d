// Package downloader hands a result link to an external download program.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/anacrolix/torrent/metainfo"

	"tpb/internal/apperr"
	"tpb/internal/logger"
)

const (
	DefaultProgram = "aria2c"
	ProgramEnv     = "TPB_DOWNLOADER"
)

var ErrEmptyLink = errors.New("no link to download")

// Runner starts the download program and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) error
}

// ExecRunner runs the program as a child process sharing this process's stdio.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, program string, args ...string) error {
	path, err := exec.LookPath(program)
	if err != nil {
		return fmt.Errorf("%s is not installed or not on PATH: %w", program, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

type Downloader struct {
	program string
	runner  Runner
}

// New returns a downloader for program, falling back to $TPB_DOWNLOADER and
// then aria2c when program is empty.
func New(program string, runner Runner) *Downloader {
	if program == "" {
		program = os.Getenv(ProgramEnv)
	}
	if program == "" {
		program = DefaultProgram
	}
	if runner == nil {
		runner = ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	}
	return &Downloader{program: program, runner: runner}
}

func (d *Downloader) Program() string {
	return d.program
}

// Download validates link and passes it to the program as its only argument.
func (d *Downloader) Download(ctx context.Context, link string) error {
	if err := Validate(link); err != nil {
		return apperr.Download("download", err)
	}

	logger.Debug("Running %s %s", d.program, link)
	if err := d.runner.Run(ctx, d.program, link); err != nil {
		return apperr.Download(d.program, err)
	}
	return nil
}

// Validate accepts magnet URIs with a parseable info hash and http(s) links
// to torrent files.
func Validate(link string) error {
	link = strings.TrimSpace(link)
	switch {
	case link == "":
		return ErrEmptyLink
	case strings.HasPrefix(link, "magnet:"):
		magnet, err := metainfo.ParseMagnetUri(link)
		if err != nil {
			return fmt.Errorf("invalid magnet link: %w", err)
		}
		logger.Debug("Magnet info hash %s (%s), %d trackers",
			magnet.InfoHash.HexString(), magnet.DisplayName, len(magnet.Trackers))
		return nil
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		return nil
	default:
		return fmt.Errorf("unsupported link %q", link)
	}
}
