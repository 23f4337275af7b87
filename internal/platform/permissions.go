package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// Application identity
const (
	AppPackage = "io.github.djgmh9.dicto"
)

// Command constants
const (
	AppOpsCommand          = "appops"
	ActivityManagerCommand = "am"
)

// Android overlay permission constants
const (
	OverlayPermissionOp   = "SYSTEM_ALERT_WINDOW"
	OverlaySettingsAction = "android.settings.action.MANAGE_OVERLAY_PERMISSION"
	GenericSettingsAction = "android.settings.SETTINGS"
)

// Appops modes that grant the overlay permission
var (
	GrantedVerdicts = []string{"allow"}
)

// Android environment variables checked for device detection
var (
	AndroidEnvVars = []string{"ANDROID_DATA", "ANDROID_ROOT", "ANDROID_STORAGE"}
)

// IsAndroid reports whether the app runs on an Android device.
// GOOS alone is not reliable for every build mode, so the Android
// environment variables and the packaged binary name are checked too.
func IsAndroid() bool {
	if runtime.GOOS == OSAndroid {
		return true
	}
	for _, name := range AndroidEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CanDrawOverlays reports whether the OS allows drawing on top of other
// apps. Desktop window managers place always-on-top windows without asking,
// so only Android performs a real permission check.
func CanDrawOverlays() bool {
	if !IsAndroid() {
		return true
	}

	out, err := exec.Command(AppOpsCommand, "get", AppPackage, OverlayPermissionOp).CombinedOutput()
	if err != nil {
		log.Printf("Failed to query overlay permission: %v", err)
		return false
	}
	return parseAppOpsVerdict(string(out))
}

// parseAppOpsVerdict reads the mode for the overlay op out of appops output.
// Typical output is a single line like "SYSTEM_ALERT_WINDOW: allow" or
// "SYSTEM_ALERT_WINDOW: deny; time=+2d3h ago". A package that never touched
// the op prints "No operations.", which counts as not granted.
func parseAppOpsVerdict(output string) bool {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, OverlayPermissionOp+":") {
			continue
		}

		verdict := strings.TrimSpace(strings.TrimPrefix(line, OverlayPermissionOp+":"))
		// The mode may carry access details after a separator
		if idx := strings.IndexAny(verdict, "; "); idx >= 0 {
			verdict = verdict[:idx]
		}

		for _, granted := range GrantedVerdicts {
			if verdict == granted {
				return true
			}
		}
		return false
	}
	return false
}

// RequestOverlayPermission opens the system screen where the user can grant
// the draw-over-apps permission. On desktop there is nothing to grant.
func RequestOverlayPermission() error {
	if !IsAndroid() {
		return nil
	}

	// Strategy 1: open the permission screen scoped to this app
	cmd := exec.Command(ActivityManagerCommand, "start", "-a", OverlaySettingsAction, "-d", "package:"+AppPackage)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Strategy 2: open the overlay permission list for all apps
	cmd = exec.Command(ActivityManagerCommand, "start", "-a", OverlaySettingsAction)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Strategy 3: fall back to the generic Settings app
	cmd = exec.Command(ActivityManagerCommand, "start", "-a", GenericSettingsAction)
	if err := cmd.Run(); err == nil {
		return nil
	}

	return fmt.Errorf("failed to open overlay permission settings")
}
