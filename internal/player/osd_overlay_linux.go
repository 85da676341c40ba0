//go:build linux

package player

/*
#include <mpv/client.h>
#include <stdlib.h>

// osd_overlay issues the osd-overlay command as a node map, the only
// form that carries res_x/res_y. format "none" clears the slot.
static int osd_overlay(mpv_handle *h, int64_t id, const char *format,
                       const char *data, int64_t res_x, int64_t res_y) {
    char *keys[6] = {"name", "id", "format", "data", "res_x", "res_y"};
    mpv_node vals[6];

    vals[0].format = MPV_FORMAT_STRING;
    vals[0].u.string = "osd-overlay";
    vals[1].format = MPV_FORMAT_INT64;
    vals[1].u.int64 = id;
    vals[2].format = MPV_FORMAT_STRING;
    vals[2].u.string = (char *)format;
    vals[3].format = MPV_FORMAT_STRING;
    vals[3].u.string = (char *)data;
    vals[4].format = MPV_FORMAT_INT64;
    vals[4].u.int64 = res_x;
    vals[5].format = MPV_FORMAT_INT64;
    vals[5].u.int64 = res_y;

    mpv_node_list list = {.num = 6, .values = vals, .keys = keys};
    mpv_node cmd = {.format = MPV_FORMAT_NODE_MAP, .u.list = &list};

    mpv_node result;
    int err = mpv_command_node(h, &cmd, &result);
    if (err >= 0) {
        mpv_free_node_contents(&result);
    }
    return err;
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/gen2brain/go-mpv"
)

// osdOverlay reaches the mpv handle through go-mpv's only struct field.
func osdOverlay(m *mpv.Mpv, id int, format, data string, resX, resY int) error {
	handle := *(**C.mpv_handle)(unsafe.Pointer(m))
	cFormat := C.CString(format)
	defer C.free(unsafe.Pointer(cFormat))
	cData := C.CString(data)
	defer C.free(unsafe.Pointer(cData))

	rc := C.osd_overlay(handle, C.int64_t(id), cFormat, cData, C.int64_t(resX), C.int64_t(resY))
	if rc < 0 {
		return fmt.Errorf("mpv error %d", int(rc))
	}
	return nil
}
