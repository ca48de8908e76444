package aggregator

import (
	"reflect"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"", OrderDirectory, false},
		{"directory", OrderDirectory, false},
		{"Natural", OrderNatural, false},
		{" filename ", OrderFilename, false},
		{"random", OrderDirectory, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrder(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderString(t *testing.T) {
	for _, o := range []Order{OrderDirectory, OrderNatural, OrderFilename} {
		parsed, err := ParseOrder(o.String())
		if err != nil || parsed != o {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", o.String(), parsed, err, o)
		}
	}
}

func TestOrderSort(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		in    []string
		want  []string
	}{
		{
			name:  "directory first",
			order: OrderDirectory,
			in:    []string{"file:///m/S02/a.mp4", "file:///m/S01/b.mp4"},
			want:  []string{"file:///m/S01/b.mp4", "file:///m/S02/a.mp4"},
		},
		{
			name:  "filename first",
			order: OrderFilename,
			in:    []string{"file:///m/S01/b.mp4", "file:///m/S02/a.mp4"},
			want:  []string{"file:///m/S02/a.mp4", "file:///m/S01/b.mp4"},
		},
		{
			name:  "filename ties broken by directory",
			order: OrderFilename,
			in:    []string{"file:///m/S02/a.mp4", "file:///m/S01/a.mp4"},
			want:  []string{"file:///m/S01/a.mp4", "file:///m/S02/a.mp4"},
		},
		{
			name:  "directory keeps a folder ahead of its longer sibling",
			order: OrderDirectory,
			in:    []string{"file:///r/A-b/a.mp4", "file:///r/A/x.mp4"},
			want:  []string{"file:///r/A/x.mp4", "file:///r/A-b/a.mp4"},
		},
		{
			name:  "natural compares the whole location",
			order: OrderNatural,
			in:    []string{"file:///r/A/x.mp4", "file:///r/A-b/a.mp4"},
			want:  []string{"file:///r/A-b/a.mp4", "file:///r/A/x.mp4"},
		},
		{
			name:  "numbers by value",
			order: OrderDirectory,
			in:    []string{"file:///m/S/ep10.mp4", "file:///m/S/ep2.mp4", "file:///m/S/ep1.mp4"},
			want:  []string{"file:///m/S/ep1.mp4", "file:///m/S/ep2.mp4", "file:///m/S/ep10.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]string(nil), tt.in...)
			tt.order.Sort(got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDedup(t *testing.T) {
	in := []string{"c", "a", "c", "b", "a"}
	want := []string{"c", "a", "b"}
	if got := Dedup(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Dedup() = %v, want %v", got, want)
	}
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v, want empty", got)
	}
}
