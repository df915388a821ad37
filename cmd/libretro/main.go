package main

import (
	libretro "github.com/user-none/eblitui/libretro"

	"github.com/user-none/softfilter/adapter"
	"github.com/user-none/softfilter/scaler"
)

func init() {
	libretro.RegisterFactory(&adapter.Factory{}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadA, BitID: scaler.ButtonFormat}, // Toggle pixel format
	})
}

func main() {}
