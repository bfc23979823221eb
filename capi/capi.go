package main

/*
#include <stdint.h>
#include <stddef.h>

typedef enum {
	QUANTIZR_OK = 0,
	QUANTIZR_VALUE_OUT_OF_RANGE = 1,
	QUANTIZR_BUFFER_TOO_SMALL = 2,
	QUANTIZR_INVALID_HANDLE = 3,
} quantizr_error_t;
*/
import "C"

import (
	"unsafe"

	"github.com/DarthSim/quantizr"
)

var (
	optionsHandles = newHandleTable()
	imageHandles   = newHandleTable()
	histHandles    = newHandleTable()
	resultHandles  = newHandleTable()
)

func toCErr(err error) C.quantizr_error_t {
	if err == nil {
		return C.QUANTIZR_OK
	}
	qe, ok := err.(*quantizr.Error)
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	switch qe.Kind {
	case quantizr.ValueOutOfRange:
		return C.QUANTIZR_VALUE_OUT_OF_RANGE
	case quantizr.BufferTooSmall:
		return C.QUANTIZR_BUFFER_TOO_SMALL
	default:
		return C.QUANTIZR_INVALID_HANDLE
	}
}

//export quantizr_options_create
func quantizr_options_create() C.uint64_t {
	return C.uint64_t(optionsHandles.put(quantizr.NewOptions()))
}

//export quantizr_options_destroy
func quantizr_options_destroy(h C.uint64_t) {
	optionsHandles.remove(uint64(h))
}

//export quantizr_options_set_max_colors
func quantizr_options_set_max_colors(h C.uint64_t, n C.int) C.quantizr_error_t {
	v, ok := optionsHandles.get(uint64(h))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	return toCErr(v.(*quantizr.Options).SetMaxColors(int(n)))
}

//export quantizr_image_create
func quantizr_image_create(data *C.uint8_t, length C.size_t, width C.int, height C.int, outHandle *C.uint64_t) C.quantizr_error_t {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	img, err := quantizr.NewImage(buf, int(width), int(height))
	if err != nil {
		return toCErr(err)
	}
	*outHandle = C.uint64_t(imageHandles.put(img))
	return C.QUANTIZR_OK
}

//export quantizr_image_destroy
func quantizr_image_destroy(h C.uint64_t) {
	imageHandles.remove(uint64(h))
}

//export quantizr_histogram_create
func quantizr_histogram_create() C.uint64_t {
	return C.uint64_t(histHandles.put(quantizr.NewHistogram()))
}

//export quantizr_histogram_destroy
func quantizr_histogram_destroy(h C.uint64_t) {
	histHandles.remove(uint64(h))
}

//export quantizr_histogram_add_image
func quantizr_histogram_add_image(histHandle C.uint64_t, imgHandle C.uint64_t) C.quantizr_error_t {
	hv, ok := histHandles.get(uint64(histHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	iv, ok := imageHandles.get(uint64(imgHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	hv.(*quantizr.Histogram).AddImage(iv.(*quantizr.Image))
	return C.QUANTIZR_OK
}

//export quantizr_quantize
func quantizr_quantize(imgHandle C.uint64_t, optsHandle C.uint64_t, outHandle *C.uint64_t) C.quantizr_error_t {
	iv, ok := imageHandles.get(uint64(imgHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	ov, ok := optionsHandles.get(uint64(optsHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	res := quantizr.Quantize(iv.(*quantizr.Image), ov.(*quantizr.Options))
	*outHandle = C.uint64_t(resultHandles.put(res))
	return C.QUANTIZR_OK
}

//export quantizr_quantize_histogram
func quantizr_quantize_histogram(histHandle C.uint64_t, optsHandle C.uint64_t, outHandle *C.uint64_t) C.quantizr_error_t {
	hv, ok := histHandles.get(uint64(histHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	ov, ok := optionsHandles.get(uint64(optsHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	res := quantizr.QuantizeHistogram(hv.(*quantizr.Histogram), ov.(*quantizr.Options))
	*outHandle = C.uint64_t(resultHandles.put(res))
	return C.QUANTIZR_OK
}

//export quantizr_result_destroy
func quantizr_result_destroy(h C.uint64_t) {
	resultHandles.remove(uint64(h))
}

//export quantizr_set_dithering_level
func quantizr_set_dithering_level(h C.uint64_t, level C.float) C.quantizr_error_t {
	v, ok := resultHandles.get(uint64(h))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	return toCErr(v.(*quantizr.QuantizeResult).SetDitheringLevel(float32(level)))
}

//export quantizr_get_error
func quantizr_get_error(h C.uint64_t) C.float {
	v, ok := resultHandles.get(uint64(h))
	if !ok {
		return 0
	}
	return C.float(v.(*quantizr.QuantizeResult).QuantizationError())
}

//export quantizr_get_palette
func quantizr_get_palette(h C.uint64_t, outColors *C.uint8_t, outCount *C.int) C.quantizr_error_t {
	v, ok := resultHandles.get(uint64(h))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	pal := v.(*quantizr.QuantizeResult).Palette()
	*outCount = C.int(pal.Count)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(outColors)), pal.Count*4)
	for i := 0; i < pal.Count; i++ {
		c := pal.Entries[i]
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
	return C.QUANTIZR_OK
}

//export quantizr_remap_image
func quantizr_remap_image(resultHandle C.uint64_t, imgHandle C.uint64_t, out *C.uint8_t, outLen C.size_t) C.quantizr_error_t {
	rv, ok := resultHandles.get(uint64(resultHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	iv, ok := imageHandles.get(uint64(imgHandle))
	if !ok {
		return C.QUANTIZR_INVALID_HANDLE
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outLen))
	return toCErr(rv.(*quantizr.QuantizeResult).RemapImage(iv.(*quantizr.Image), buf))
}

func main() {}
