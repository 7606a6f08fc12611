package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/coiled/coiled-examples/cli/entity"
	"github.com/coiled/coiled-examples/cli/ui"
)

// SendPanic reports a crash to the service after the user agrees
func (c *Controller) SendPanic(ctx context.Context, req *entity.PanicRequest) error {
	if !ui.SupportsANSICodes() {
		return nil
	}
	confirmSendPanic()
	_, err := c.gtwy.SendPanic(ctx, req)
	if err != nil {
		ui.StopSpinner("")
		return err
	}
	ui.StopSpinner("🙏 Thanks, the crash report is on its way")
	return nil
}

func confirmSendPanic() {
	fmt.Printf("🚨 Looks like something went wrong, Press Enter to send a crash report (^C to quit)")
	fmt.Fscanln(os.Stdin)
	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Taking notes...",
	})
}
