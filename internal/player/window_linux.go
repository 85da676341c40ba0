//go:build linux

package player

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>

// toplevel_window returns the child of the root window that contains the
// focused window, which is the frame mpv must embed into.
static long toplevel_window(void) {
    Display *d = XOpenDisplay(NULL);
    if (!d) return 0;

    Window focus;
    int revert;
    XGetInputFocus(d, &focus, &revert);
    if (focus == None || focus == PointerRoot) {
        XCloseDisplay(d);
        return 0;
    }

    Window w = focus, root, parent, *children;
    unsigned int n;
    while (XQueryTree(d, w, &root, &parent, &children, &n)) {
        if (children) XFree(children);
        if (parent == root || parent == None) break;
        w = parent;
    }
    XCloseDisplay(d);
    return (long)w;
}
*/
import "C"

import "errors"

// WindowHandle returns the X11 id of the focused top-level window.
func WindowHandle() (int64, error) {
	wid := int64(C.toplevel_window())
	if wid == 0 {
		return 0, errors.New("no focused X11 window")
	}
	return wid, nil
}
