package version

import (
	"fmt"
	"strconv"
	"time"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X winsbygroup.com/custbook/internal/version.Version=1.2.3"
var Version = "1.0"

// RepoURL is the project repository URL. Can be overridden at build time via:
//
//	go build -ldflags "-X winsbygroup.com/custbook/internal/version.RepoURL=https://github.com/yourfork/custbook"
var RepoURL = "https://github.com/winsbygroup/custbook"

// Banner prints identifying information about the server.
func Banner() string {
	y := strconv.Itoa(time.Now().Year())
	copyright := "Copyright 2025-" + y + " Winsby Group LLC. All rights reserved."

	return fmt.Sprintf("%s\nCustbook (v%s)\n%s\n", product(), Version, copyright)
}

func product() string {
	// http://patorjk.com/software/taag/#p=display&f=Standard&t=Custbook

	const s = `
   ____          _   _                 _
  / ___|   _ ___| |_| |__   ___   ___ | | __
 | |  | | | / __| __| '_ \ / _ \ / _ \| |/ /
 | |__| |_| \__ \ |_| |_) | (_) | (_) |   <
  \____\__,_|___/\__|_.__/ \___/ \___/|_|\_\
`
	return s
}
