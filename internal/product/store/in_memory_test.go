package store

import (
	"math"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProductStoreSuite is a test suite for the in-memory ProductStore implementation.
type ProductStoreSuite struct {
	suite.Suite
	store ProductStore
}

// SetupTest gives every test an empty store with the default capacity.
func (s *ProductStoreSuite) SetupTest() {
	s.store = NewInMemoryStore(DefaultCapacity)
}

func TestProductStore(t *testing.T) {
	suite.Run(t, new(ProductStoreSuite))
}

// createTestProduct is a helper function to create a product for testing purposes.
func (s *ProductStoreSuite) createTestProduct(id int, name string, price float64, quantity int) *Product {
	s.T().Helper()
	product, err := s.store.Add(id, name, price, quantity)
	require.NoError(s.T(), err, "createTestProduct helper failed to create product")
	return product
}

func (s *ProductStoreSuite) ids() []int {
	products, err := s.store.FindAll()
	if err != nil {
		return nil
	}
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func (s *ProductStoreSuite) TestAddAndFindByID() {
	created := s.createTestProduct(101, "Cement", 270.0, 50)

	require.Equal(s.T(), 1, s.store.Len())
	fetched, err := s.store.FindByID(101)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), *created, *fetched)
	assert.Equal(s.T(), Product{ID: 101, Name: "Cement", Price: 270.0, Quantity: 50}, *fetched)
}

func (s *ProductStoreSuite) TestAdd_DuplicateID() {
	s.createTestProduct(101, "Cement", 270.0, 50)

	_, err := s.store.Add(101, "X", 1, 1)

	require.ErrorIs(s.T(), err, perrors.ErrDuplicateID)
	fetched, err := s.store.FindByID(101)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Cement", fetched.Name, "duplicate add must not mutate the store")
	assert.Equal(s.T(), 1, s.store.Len())
}

func (s *ProductStoreSuite) TestAdd_CapacityExceeded() {
	s.store = NewInMemoryStore(2)
	s.createTestProduct(1, "A", 1, 1)
	s.createTestProduct(2, "B", 1, 1)

	_, err := s.store.Add(3, "C", 1, 1)

	require.ErrorIs(s.T(), err, perrors.ErrCapacityExceeded)
	assert.Equal(s.T(), 2, s.store.Len())
}

func (s *ProductStoreSuite) TestAdd_CapacityCheckedBeforeDuplicate() {
	s.store = NewInMemoryStore(1)
	s.createTestProduct(1, "A", 1, 1)

	_, err := s.store.Add(1, "A", 1, 1)

	require.ErrorIs(s.T(), err, perrors.ErrCapacityExceeded)
}

func (s *ProductStoreSuite) TestAdd_DoesNotValidateFields() {
	_, err := s.store.Add(7, "", -1, -5)
	require.NoError(s.T(), err)
}

func (s *ProductStoreSuite) TestAdd_PreservesInsertionOrder() {
	for _, id := range []int{5, 3, 9, 1} {
		s.createTestProduct(id, "P", 1, 1)
	}
	assert.Equal(s.T(), []int{5, 3, 9, 1}, s.ids())
}

func (s *ProductStoreSuite) TestFindIndexByID() {
	s.createTestProduct(10, "A", 1, 1)
	s.createTestProduct(20, "B", 1, 1)

	idx, err := s.store.FindIndexByID(20)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, idx)

	idx, err = s.store.FindIndexByID(30)
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
	assert.Equal(s.T(), -1, idx)
}

func (s *ProductStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(42)
	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
}

func (s *ProductStoreSuite) TestFindAll_Empty() {
	products, err := s.store.FindAll()
	require.ErrorIs(s.T(), err, perrors.ErrNoProducts)
	assert.Nil(s.T(), products)
}

func (s *ProductStoreSuite) TestFindAll_ReturnsCopy() {
	s.createTestProduct(1, "A", 1, 1)

	products, err := s.store.FindAll()
	require.NoError(s.T(), err)
	products[0].Name = "changed"

	fetched, err := s.store.FindByID(1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "A", fetched.Name)
}

func (s *ProductStoreSuite) TestUpdates() {
	s.createTestProduct(1, "A", 1, 1)

	updated, err := s.store.UpdateName(1, "B")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "B", updated.Name)

	updated, err = s.store.UpdatePrice(1, 9.5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 9.5, updated.Price)

	updated, err = s.store.UpdateQuantity(1, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, updated.Quantity)

	fetched, err := s.store.FindByID(1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), Product{ID: 1, Name: "B", Price: 9.5, Quantity: 0}, *fetched)
}

func (s *ProductStoreSuite) TestUpdates_Errors() {
	s.createTestProduct(1, "A", 1, 1)

	testCases := []struct {
		name        string
		update      func() error
		expectError error
	}{
		{"name not found", func() error { _, err := s.store.UpdateName(2, "B"); return err }, perrors.ErrProductNotFound},
		{"empty name", func() error { _, err := s.store.UpdateName(1, ""); return err }, perrors.ErrInvalidInput},
		{"price not found", func() error { _, err := s.store.UpdatePrice(2, 1); return err }, perrors.ErrProductNotFound},
		{"negative price", func() error { _, err := s.store.UpdatePrice(1, -0.01); return err }, perrors.ErrInvalidInput},
		{"NaN price", func() error { _, err := s.store.UpdatePrice(1, math.NaN()); return err }, perrors.ErrInvalidInput},
		{"quantity not found", func() error { _, err := s.store.UpdateQuantity(2, 1); return err }, perrors.ErrProductNotFound},
		{"negative quantity", func() error { _, err := s.store.UpdateQuantity(1, -1); return err }, perrors.ErrInvalidInput},
		{"not found wins over invalid", func() error { _, err := s.store.UpdatePrice(2, -1); return err }, perrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			require.ErrorIs(s.T(), tc.update(), tc.expectError)
			fetched, err := s.store.FindByID(1)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), Product{ID: 1, Name: "A", Price: 1, Quantity: 1}, *fetched)
		})
	}
}

func (s *ProductStoreSuite) TestDeleteByID_PreservesOrder() {
	for _, id := range []int{1, 2, 3, 4} {
		s.createTestProduct(id, "P", 1, 1)
	}

	require.NoError(s.T(), s.store.DeleteByID(2))

	assert.Equal(s.T(), []int{1, 3, 4}, s.ids())
	assert.Equal(s.T(), 3, s.store.Len())
	idx, err := s.store.FindIndexByID(3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, idx)
}

func (s *ProductStoreSuite) TestDeleteByID_NotFound() {
	s.createTestProduct(1, "A", 1, 1)

	err := s.store.DeleteByID(2)

	require.ErrorIs(s.T(), err, perrors.ErrProductNotFound)
	assert.Equal(s.T(), []int{1}, s.ids())
}

func (s *ProductStoreSuite) TestAddDeleteLifecycle() {
	_, err := s.store.Add(101, "Cement", 270.0, 50)
	require.NoError(s.T(), err)
	_, err = s.store.Add(101, "X", 1, 1)
	require.ErrorIs(s.T(), err, perrors.ErrDuplicateID)
	require.NoError(s.T(), s.store.DeleteByID(101))
	assert.Equal(s.T(), 0, s.store.Len())
	require.ErrorIs(s.T(), s.store.DeleteByID(101), perrors.ErrProductNotFound)
}

func (s *ProductStoreSuite) TestReplace() {
	s.createTestProduct(1, "old", 1, 1)

	n := s.store.Replace([]Product{{ID: 101, Name: "A"}, {ID: 102, Name: "B"}})

	assert.Equal(s.T(), 2, n)
	assert.Equal(s.T(), []int{101, 102}, s.ids())
}

func (s *ProductStoreSuite) TestReplace_StopsAtCapacity() {
	s.store = NewInMemoryStore(2)

	n := s.store.Replace([]Product{{ID: 1}, {ID: 2}, {ID: 3}})

	assert.Equal(s.T(), 2, n)
	assert.Equal(s.T(), []int{1, 2}, s.ids())
}

func (s *ProductStoreSuite) TestMerge_SkipsDuplicatesAndStopsAtCapacity() {
	s.store = NewInMemoryStore(3)
	s.createTestProduct(1, "kept", 1, 1)

	n := s.store.Merge([]Product{{ID: 1, Name: "dup"}, {ID: 2}, {ID: 2}, {ID: 3}, {ID: 4}})

	assert.Equal(s.T(), 2, n)
	assert.Equal(s.T(), []int{1, 2, 3}, s.ids())
	fetched, err := s.store.FindByID(1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "kept", fetched.Name)
}

func (s *ProductStoreSuite) TestReset() {
	s.createTestProduct(1, "A", 1, 1)
	s.store.Reset()
	assert.Equal(s.T(), 0, s.store.Len())
	_, err := s.store.FindAll()
	require.ErrorIs(s.T(), err, perrors.ErrNoProducts)
}

func TestNewInMemoryStore_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewInMemoryStore(0).Capacity())
	assert.Equal(t, 5, NewInMemoryStore(5).Capacity())
}
