package rgb_test

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/sonoshi/mado/rgb"
)

func TestUInt32RGBToColor(t *testing.T) {
	type args struct {
		v uint32
	}
	tests := []struct {
		name string
		args args
		want color.RGBA
	}{
		{"packed", args{0xffccaa}, color.RGBA{0xff, 0xcc, 0xaa, 0xff}},
		{"black", args{0}, color.RGBA{0, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgb.UInt32RGBToColor(tt.args.v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UInt32RGBToColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorToUInt32RGB(t *testing.T) {
	c := color.RGBA{0x12, 0x34, 0x56, 0xff}
	if got := rgb.ColorToUInt32RGB(c); got != 0x123456 {
		t.Errorf("ColorToUInt32RGB() = %#x, want 0x123456", got)
	}
}

func TestParseColor(t *testing.T) {
	type args struct {
		spec string
	}
	tests := []struct {
		name   string
		args   args
		want   color.RGBA
		wantOk bool
	}{
		{"hex6", args{"#ffccaa"}, color.RGBA{0xff, 0xcc, 0xaa, 0xff}, true},
		{"hex3", args{"#fca"}, color.RGBA{0xff, 0xcc, 0xaa, 0xff}, true},
		{"xparsecolor", args{"rgb:ff/cc/aa"}, color.RGBA{0xff, 0xcc, 0xaa, 0xff}, true},
		{"surrounding space", args{" #102030 "}, color.RGBA{0x10, 0x20, 0x30, 0xff}, true},
		{"named", args{"red"}, color.RGBA{0xff, 0, 0, 0xff}, true},
		{"named case insensitive", args{"White"}, color.RGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"bad hex length", args{"#ffcc"}, color.RGBA{}, false},
		{"bad hex digit", args{"#ggffee"}, color.RGBA{}, false},
		{"bad slashed", args{"rgb:ff/cc"}, color.RGBA{}, false},
		{"unknown form", args{"tomato"}, color.RGBA{}, false},
		{"empty", args{""}, color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rgb.ParseColor(tt.args.spec)
			if ok != tt.wantOk || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColor(%q) = (%v, %v), want (%v, %v)", tt.args.spec, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseColorSet(t *testing.T) {
	type args struct {
		raw string
	}
	tests := []struct {
		name string
		args args
		want map[int]uint32
	}{
		{"single pair", args{"4;#0000ff"}, map[int]uint32{4: 0x0000ff}},
		{"multiple pairs", args{"1;#ff0000;2;#00ff00"}, map[int]uint32{1: 0xff0000, 2: 0x00ff00}},
		{"bad index skipped", args{"foo;#ff0000;2;#00ff00"}, map[int]uint32{2: 0x00ff00}},
		{"out of range skipped", args{"256;#ff0000"}, map[int]uint32{}},
		{"bad spec skipped", args{"1;nope;2;rgb:00/00/ff"}, map[int]uint32{2: 0x0000ff}},
		{"dangling index ignored", args{"1;#ff0000;9"}, map[int]uint32{1: 0xff0000}},
		{"empty", args{""}, map[int]uint32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgb.ParseColorSet(tt.args.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColorSet(%q) = %v, want %v", tt.args.raw, got, tt.want)
			}
		})
	}
}
