//go:build !windows

package main

import (
	"os/exec"
	"syscall"
)

const shellFlag = "-c"

// detachCommand starts the child in a new session so a hangup or signal sent
// to our terminal's process group never reaches it.
func detachCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
