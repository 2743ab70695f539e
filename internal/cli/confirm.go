package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirmPrompt asks a y/N question on stdin. Anything but an explicit
// yes declines, so destructive commands default to doing nothing.
func confirmPrompt(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
