package iotesting

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/plant"
)

// Call records one invocation of FakeClient.
type Call struct {
	Method string
	ID     plant.ID
	Input  plant.Input
}

// FakeClient is an in-memory api.Client. Errors can be injected per
// method, every call is recorded.
type FakeClient struct {
	mu     sync.Mutex
	plants []plant.Plant
	nextID int
	calls  []Call

	// Block, if not nil, is received from before Create and Update return.
	Block chan struct{}

	// Listing, if not nil, gets a value when ListAll starts.
	Listing chan struct{}
	// ListBlock, if not nil, is received from before ListAll returns.
	ListBlock chan struct{}

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	RemoveErr error
}

var _ api.Client = (*FakeClient)(nil)

// NewFakeClient returns a fake holding a copy of plants.
func NewFakeClient(plants ...plant.Plant) *FakeClient {
	res := &FakeClient{plants: slices.Clone(plants)}
	for _, v := range plants {
		if n, err := strconv.Atoi(v.ID.String()); err == nil && n > res.nextID {
			res.nextID = n
		}
	}
	return res
}

// Calls returns recorded calls.
func (f *FakeClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallsOf returns recorded calls of one method.
func (f *FakeClient) CallsOf(method string) []Call {
	var res []Call
	for _, v := range f.Calls() {
		if v.Method == method {
			res = append(res, v)
		}
	}
	return res
}

// Plants returns the current content of the fake backend.
func (f *FakeClient) Plants() []plant.Plant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.plants)
}

func (f *FakeClient) record(c Call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *FakeClient) ListAll(_ context.Context) ([]plant.Plant, error) {
	f.record(Call{Method: "ListAll"})
	if f.Listing != nil {
		f.Listing <- struct{}{}
	}
	if f.ListBlock != nil {
		<-f.ListBlock
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Plants(), nil
}

func (f *FakeClient) Get(_ context.Context, id plant.ID) (plant.Plant, error) {
	f.record(Call{Method: "Get", ID: id})
	if f.GetErr != nil {
		return plant.Plant{}, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.index(id); i >= 0 {
		return f.plants[i], nil
	}
	return plant.Plant{}, fmt.Errorf("plant %s not found", id)
}

func (f *FakeClient) Create(_ context.Context, in plant.Input) (plant.Plant, error) {
	f.record(Call{Method: "Create", Input: in})
	if f.Block != nil {
		<-f.Block
	}
	if f.CreateErr != nil {
		return plant.Plant{}, f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := plant.Plant{ID: plant.ID(strconv.Itoa(f.nextID)), Input: in}
	f.plants = append(f.plants, p)
	return p, nil
}

func (f *FakeClient) Update(
	_ context.Context,
	id plant.ID,
	in plant.Input,
) (plant.Plant, error) {
	f.record(Call{Method: "Update", ID: id, Input: in})
	if f.Block != nil {
		<-f.Block
	}
	if f.UpdateErr != nil {
		return plant.Plant{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return plant.Plant{}, fmt.Errorf("plant %s not found", id)
	}
	f.plants[i].Input = in
	return f.plants[i], nil
}

func (f *FakeClient) Remove(_ context.Context, id plant.ID) error {
	f.record(Call{Method: "Remove", ID: id})
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return fmt.Errorf("plant %s not found", id)
	}
	f.plants = slices.Delete(f.plants, i, i+1)
	return nil
}

func (f *FakeClient) index(id plant.ID) int {
	return slices.IndexFunc(f.plants, func(p plant.Plant) bool {
		return p.ID == id
	})
}
