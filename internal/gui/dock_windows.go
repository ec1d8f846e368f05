//go:build windows

package gui

import (
	"unsafe"

	"topscreen-counter/internal/logger"

	"fyne.io/fyne/v2/driver"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sys/windows"
)

const (
	abmNew    = 0x00000000
	abmRemove = 0x00000001
	abmSetPos = 0x00000003
	abeTop    = 1

	smCxScreen = 0

	swpNoActivate = 0x0010
	swpShowWindow = 0x0040
	hwndTopmost   = ^uintptr(0)
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")

	procSHAppBarMessage  = shell32.NewProc("SHAppBarMessage")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// appBarData mirrors APPBARDATA.
type appBarData struct {
	cbSize           uint32
	hWnd             uintptr
	uCallbackMessage uint32
	uEdge            uint32
	rc               rect
	lParam           uintptr
}

// appBar is registered on the UI goroutine and removed from the shutdown
// manager's goroutine.
type appBar struct {
	hwnd       uintptr
	registered *atomic.Bool
	logger     logger.Logger
}

func newAppBar(log logger.Logger) *appBar {
	return &appBar{registered: atomic.NewBool(false), logger: log}
}

func screenWidth() int {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	return int(int32(w))
}

func (a *appBar) register(native any, width, height int) error {
	ctx, ok := native.(driver.WindowsWindowContext)
	if !ok || ctx.HWND == 0 {
		return errors.Errorf("unexpected native context %T", native)
	}
	a.hwnd = ctx.HWND

	abd := a.data(width, height)
	if r, _, err := procSHAppBarMessage.Call(abmNew, uintptr(unsafe.Pointer(&abd))); r == 0 {
		return errors.Wrap(err, "SHAppBarMessage(ABM_NEW)")
	}
	a.registered.Store(true)

	r, _, _ := procSHAppBarMessage.Call(abmSetPos, uintptr(unsafe.Pointer(&abd)))
	a.logger.Debug("DockedWindow", "ABM_SETPOS", map[string]interface{}{
		"result": uint64(r),
		"left":   abd.rc.Left,
		"top":    abd.rc.Top,
		"right":  abd.rc.Right,
		"bottom": abd.rc.Bottom,
	})

	// ABM_SETPOS may shrink the rect; place the window where the shell put it.
	rc := abd.rc
	r, _, err := procSetWindowPos.Call(a.hwnd, hwndTopmost,
		uintptr(rc.Left), uintptr(rc.Top),
		uintptr(rc.Right-rc.Left), uintptr(rc.Bottom-rc.Top),
		swpNoActivate|swpShowWindow)
	if r == 0 {
		return errors.Wrap(err, "SetWindowPos")
	}
	return nil
}

func (a *appBar) remove() error {
	if !a.registered.CompareAndSwap(true, false) {
		return nil
	}
	abd := appBarData{hWnd: a.hwnd}
	abd.cbSize = uint32(unsafe.Sizeof(abd))
	procSHAppBarMessage.Call(abmRemove, uintptr(unsafe.Pointer(&abd)))
	return nil
}

func (a *appBar) data(width, height int) appBarData {
	abd := appBarData{
		hWnd:  a.hwnd,
		uEdge: abeTop,
		rc:    rect{Left: 0, Top: 0, Right: int32(width), Bottom: int32(height)},
	}
	abd.cbSize = uint32(unsafe.Sizeof(abd))
	return abd
}
