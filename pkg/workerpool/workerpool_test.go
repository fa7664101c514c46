package workerpool

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
)

func TestProcess(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	type args struct {
		ctx         context.Context
		workerCount int
		items       []int
		failOn      int
	}
	tests := []struct {
		name         string
		args         args
		wantErr      error
		expectCancel bool
		wantSum      int32
	}{
		{
			name: "success processes all items",
			args: args{
				ctx:         context.Background(),
				workerCount: 2,
				items:       []int{1, 2, 3, 4},
			},
			wantSum: 10,
		},
		{
			name: "more workers than items",
			args: args{
				ctx:         context.Background(),
				workerCount: 16,
				items:       []int{5, 6},
			},
			wantSum: 11,
		},
		{
			name: "error cancels workers and calls onCancel",
			args: args{
				ctx:         context.Background(),
				workerCount: 1,
				items:       []int{1, 2, 3},
				failOn:      2,
			},
			wantErr:      errBoom,
			expectCancel: true,
			wantSum:      1,
		},
		{
			name: "context canceled returns canceled error",
			args: args{
				ctx: func() context.Context {
					ctx, cancel := context.WithCancel(context.Background())
					cancel()
					return ctx
				}(),
				workerCount: 2,
				items:       []int{1, 2},
			},
			wantErr: context.Canceled,
			wantSum: -1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var processed int32
			var canceled int32

			process := func(_ context.Context, v int) error {
				if v == tt.args.failOn {
					return errBoom
				}
				atomic.AddInt32(&processed, int32(v))
				return nil
			}
			onCancel := func() {
				atomic.AddInt32(&canceled, 1)
			}

			err := Process(tt.args.ctx, tt.args.workerCount, tt.args.items, process, onCancel)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Process() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.expectCancel != (canceled == 1) {
				t.Fatalf("Process() onCancel calls = %d, expectCancel %v", canceled, tt.expectCancel)
			}
			if tt.wantSum >= 0 && processed != tt.wantSum {
				t.Fatalf("Process() processed sum = %d, want %d", processed, tt.wantSum)
			}
		})
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()

		got, err := Map(context.Background(), 4, []int{3, 1, 2, 10}, func(_ context.Context, v int) (string, error) {
			return strconv.Itoa(v * 2), nil
		})
		if err != nil {
			t.Fatalf("Map() error = %v", err)
		}
		want := []string{"6", "2", "4", "20"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Map() got = %v, want %v", got, want)
			}
		}
	})

	t.Run("returns first error", func(t *testing.T) {
		t.Parallel()

		failure := errors.New("fetch failed")
		got, err := Map(context.Background(), 2, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
			if v == 2 {
				return 0, failure
			}
			return v, nil
		})
		if !errors.Is(err, failure) {
			t.Fatalf("Map() error = %v, want %v", err, failure)
		}
		if got != nil {
			t.Fatalf("Map() got = %v, want nil", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := Map(context.Background(), 2, nil, func(_ context.Context, v int) (int, error) {
			return v, nil
		})
		if err != nil || len(got) != 0 {
			t.Fatalf("Map() = %v, %v; want empty result", got, err)
		}
	})
}
