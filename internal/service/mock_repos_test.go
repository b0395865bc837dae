package service

import (
	"context"
	"io"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/colejunck1/Task-Tracker/internal/model"
	"github.com/colejunck1/Task-Tracker/internal/repository"
)

// ── Mock ModelRepository ──

type mockModelRepo struct {
	models map[int64]*model.Model
	nextID int64
}

func newMockModelRepo() *mockModelRepo {
	return &mockModelRepo{models: make(map[int64]*model.Model)}
}

func (m *mockModelRepo) Create(_ context.Context, mo *model.Model) error {
	m.nextID++
	mo.ID = m.nextID
	m.models[mo.ID] = mo
	return nil
}

func (m *mockModelRepo) GetByID(_ context.Context, id int64) (*model.Model, error) {
	if mo, ok := m.models[id]; ok {
		return mo, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModelRepo) List(_ context.Context) ([]model.Model, error) {
	var result []model.Model
	for _, mo := range m.models {
		result = append(result, *mo)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockModelRepo) Update(_ context.Context, mo *model.Model) error {
	if _, ok := m.models[mo.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.models[mo.ID] = mo
	return nil
}

func (m *mockModelRepo) Delete(_ context.Context, id int64) error {
	delete(m.models, id)
	return nil
}

// ── Mock StationRepository ──

type mockStationRepo struct {
	stations map[int64]*model.Station
	nextID   int64
}

func newMockStationRepo() *mockStationRepo {
	return &mockStationRepo{stations: make(map[int64]*model.Station)}
}

func (m *mockStationRepo) Create(_ context.Context, s *model.Station) error {
	m.nextID++
	s.ID = m.nextID
	m.stations[s.ID] = s
	return nil
}

func (m *mockStationRepo) BatchCreate(_ context.Context, stations []model.Station) error {
	for i := range stations {
		m.nextID++
		stations[i].ID = m.nextID
		s := stations[i]
		m.stations[s.ID] = &s
	}
	return nil
}

func (m *mockStationRepo) GetByID(_ context.Context, id int64) (*model.Station, error) {
	if s, ok := m.stations[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStationRepo) List(_ context.Context) ([]model.Station, error) {
	var result []model.Station
	for _, s := range m.stations {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		si, sj := result[i].StationSequence, result[j].StationSequence
		if si != nil && sj != nil && *si != *sj {
			return *si < *sj
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockStationRepo) Update(_ context.Context, s *model.Station) error {
	if _, ok := m.stations[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.stations[s.ID] = s
	return nil
}

func (m *mockStationRepo) UpdateSequence(_ context.Context, id int64, sequence int) error {
	s, ok := m.stations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.StationSequence = &sequence
	return nil
}

func (m *mockStationRepo) Delete(_ context.Context, id int64) error {
	delete(m.stations, id)
	return nil
}

// ── Mock TaskDataRepository ──

type mockTaskDataRepo struct {
	tasks  map[int64]*model.TaskData
	nextID int64
}

func newMockTaskDataRepo() *mockTaskDataRepo {
	return &mockTaskDataRepo{tasks: make(map[int64]*model.TaskData)}
}

func (m *mockTaskDataRepo) Create(_ context.Context, t *model.TaskData) error {
	m.nextID++
	t.ID = m.nextID
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskDataRepo) BatchCreate(_ context.Context, tasks []model.TaskData) error {
	for i := range tasks {
		m.nextID++
		tasks[i].ID = m.nextID
		t := tasks[i]
		m.tasks[t.ID] = &t
	}
	return nil
}

func (m *mockTaskDataRepo) GetByID(_ context.Context, id int64) (*model.TaskData, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskDataRepo) List(_ context.Context, station string, modelID *int64) ([]model.TaskData, error) {
	var result []model.TaskData
	for _, t := range m.tasks {
		if station != "" && t.Station != station {
			continue
		}
		if modelID != nil && (t.Model == nil || *t.Model != *modelID) {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTaskDataRepo) ListByModel(_ context.Context, modelID int64) ([]model.TaskData, error) {
	var result []model.TaskData
	for _, t := range m.tasks {
		if t.Model != nil && *t.Model == modelID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTaskDataRepo) Update(_ context.Context, t *model.TaskData) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskDataRepo) Delete(_ context.Context, id int64) error {
	delete(m.tasks, id)
	return nil
}

// ── Mock ScheduleGroupRepository ──

type mockScheduleGroupRepo struct {
	groups map[int64]*model.ScheduleGroup
	nextID int64
}

func newMockScheduleGroupRepo() *mockScheduleGroupRepo {
	return &mockScheduleGroupRepo{groups: make(map[int64]*model.ScheduleGroup)}
}

func (m *mockScheduleGroupRepo) Create(_ context.Context, g *model.ScheduleGroup) error {
	m.nextID++
	g.ID = m.nextID
	m.groups[g.ID] = g
	return nil
}

func (m *mockScheduleGroupRepo) BatchCreate(_ context.Context, groups []model.ScheduleGroup) error {
	for i := range groups {
		m.nextID++
		groups[i].ID = m.nextID
		g := groups[i]
		m.groups[g.ID] = &g
	}
	return nil
}

func (m *mockScheduleGroupRepo) GetByID(_ context.Context, id int64) (*model.ScheduleGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleGroupRepo) List(_ context.Context) ([]model.ScheduleGroup, error) {
	var result []model.ScheduleGroup
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleGroupRepo) Update(_ context.Context, g *model.ScheduleGroup) error {
	if _, ok := m.groups[g.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.groups[g.ID] = g
	return nil
}

func (m *mockScheduleGroupRepo) Delete(_ context.Context, id int64) error {
	delete(m.groups, id)
	return nil
}

func (m *mockScheduleGroupRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(m.groups, id)
	}
	return nil
}

// ── Mock BoatOrderRepository ──

type mockBoatOrderRepo struct {
	orders map[int64]*model.BoatOrder
	nextID int64
}

func newMockBoatOrderRepo() *mockBoatOrderRepo {
	return &mockBoatOrderRepo{orders: make(map[int64]*model.BoatOrder)}
}

func (m *mockBoatOrderRepo) Create(_ context.Context, o *model.BoatOrder) error {
	m.nextID++
	o.ID = m.nextID
	m.orders[o.ID] = o
	return nil
}

func (m *mockBoatOrderRepo) GetByID(_ context.Context, id int64) (*model.BoatOrder, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoatOrderRepo) List(_ context.Context, search string) ([]model.BoatOrder, error) {
	var result []model.BoatOrder
	for _, o := range m.orders {
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ── Mock BoatOrderOptionRepository ──

type mockBoatOrderOptionRepo struct {
	options []model.BoatOrderOption
	nextID  int64
}

func newMockBoatOrderOptionRepo() *mockBoatOrderOptionRepo {
	return &mockBoatOrderOptionRepo{}
}

func (m *mockBoatOrderOptionRepo) BatchCreate(_ context.Context, options []model.BoatOrderOption) error {
	for i := range options {
		m.nextID++
		options[i].ID = m.nextID
		m.options = append(m.options, options[i])
	}
	return nil
}

func (m *mockBoatOrderOptionRepo) ListByOrder(_ context.Context, orderID int64) ([]model.BoatOrderOption, error) {
	var result []model.BoatOrderOption
	for _, o := range m.options {
		if o.BoatOrderID == orderID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ── Mock BoatOrderHeaderRepository ──

type mockBoatOrderHeaderRepo struct {
	headers map[int64]*model.BoatOrderHeader
	nextID  int64
}

func newMockBoatOrderHeaderRepo() *mockBoatOrderHeaderRepo {
	return &mockBoatOrderHeaderRepo{headers: make(map[int64]*model.BoatOrderHeader)}
}

func (m *mockBoatOrderHeaderRepo) Create(_ context.Context, h *model.BoatOrderHeader) error {
	m.nextID++
	h.ID = m.nextID
	m.headers[h.ID] = h
	return nil
}

func (m *mockBoatOrderHeaderRepo) BatchCreate(_ context.Context, headers []model.BoatOrderHeader) error {
	for i := range headers {
		m.nextID++
		headers[i].ID = m.nextID
		h := headers[i]
		m.headers[h.ID] = &h
	}
	return nil
}

func (m *mockBoatOrderHeaderRepo) GetByID(_ context.Context, id int64) (*model.BoatOrderHeader, error) {
	if h, ok := m.headers[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoatOrderHeaderRepo) ListByModel(_ context.Context, modelID int64) ([]model.BoatOrderHeader, error) {
	var result []model.BoatOrderHeader
	for _, h := range m.headers {
		if h.ModelID == modelID {
			result = append(result, *h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockBoatOrderHeaderRepo) Update(_ context.Context, h *model.BoatOrderHeader) error {
	if _, ok := m.headers[h.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.headers[h.ID] = h
	return nil
}

func (m *mockBoatOrderHeaderRepo) Delete(_ context.Context, id int64) error {
	delete(m.headers, id)
	return nil
}

// ── Mock ModelOptionRepository ──

type mockModelOptionRepo struct {
	options map[int64]*model.ModelOption
	nextID  int64
}

func newMockModelOptionRepo() *mockModelOptionRepo {
	return &mockModelOptionRepo{options: make(map[int64]*model.ModelOption)}
}

func (m *mockModelOptionRepo) Create(_ context.Context, o *model.ModelOption) error {
	m.nextID++
	o.ID = m.nextID
	m.options[o.ID] = o
	return nil
}

func (m *mockModelOptionRepo) BatchCreate(_ context.Context, options []model.ModelOption) error {
	for i := range options {
		m.nextID++
		options[i].ID = m.nextID
		o := options[i]
		m.options[o.ID] = &o
	}
	return nil
}

func (m *mockModelOptionRepo) GetByID(_ context.Context, id int64) (*model.ModelOption, error) {
	if o, ok := m.options[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModelOptionRepo) ListByModel(_ context.Context, modelID int64) ([]model.ModelOption, error) {
	var result []model.ModelOption
	for _, o := range m.options {
		if o.ModelID == modelID {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockModelOptionRepo) Update(_ context.Context, o *model.ModelOption) error {
	if _, ok := m.options[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.options[o.ID] = o
	return nil
}

func (m *mockModelOptionRepo) Delete(_ context.Context, id int64) error {
	delete(m.options, id)
	return nil
}

// ── Mock DoNotShowOptionRepository ──

type mockDoNotShowOptionRepo struct {
	options map[int64]*model.DoNotShowOption
	nextID  int64
}

func newMockDoNotShowOptionRepo() *mockDoNotShowOptionRepo {
	return &mockDoNotShowOptionRepo{options: make(map[int64]*model.DoNotShowOption)}
}

func (m *mockDoNotShowOptionRepo) Create(_ context.Context, o *model.DoNotShowOption) error {
	m.nextID++
	o.ID = m.nextID
	m.options[o.ID] = o
	return nil
}

func (m *mockDoNotShowOptionRepo) BatchCreate(_ context.Context, options []model.DoNotShowOption) error {
	for i := range options {
		m.nextID++
		options[i].ID = m.nextID
		o := options[i]
		m.options[o.ID] = &o
	}
	return nil
}

func (m *mockDoNotShowOptionRepo) GetByID(_ context.Context, id int64) (*model.DoNotShowOption, error) {
	if o, ok := m.options[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDoNotShowOptionRepo) List(_ context.Context) ([]model.DoNotShowOption, error) {
	var result []model.DoNotShowOption
	for _, o := range m.options {
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDoNotShowOptionRepo) Update(_ context.Context, o *model.DoNotShowOption) error {
	if _, ok := m.options[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.options[o.ID] = o
	return nil
}

func (m *mockDoNotShowOptionRepo) Delete(_ context.Context, id int64) error {
	delete(m.options, id)
	return nil
}

// ── Mock TaskPerHullRepository ──

type mockTaskPerHullRepo struct {
	tasks  map[int64]*model.TaskPerHull
	nextID int64
}

func newMockTaskPerHullRepo() *mockTaskPerHullRepo {
	return &mockTaskPerHullRepo{tasks: make(map[int64]*model.TaskPerHull)}
}

func (m *mockTaskPerHullRepo) BatchCreate(_ context.Context, tasks []model.TaskPerHull) error {
	for i := range tasks {
		m.nextID++
		tasks[i].ID = m.nextID
		t := tasks[i]
		m.tasks[t.ID] = &t
	}
	return nil
}

func (m *mockTaskPerHullRepo) GetByID(_ context.Context, id int64) (*model.TaskPerHull, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskPerHullRepo) List(_ context.Context, station, hullNumber string) ([]model.TaskPerHull, error) {
	var result []model.TaskPerHull
	for _, t := range m.tasks {
		if station != "" && t.Station != station {
			continue
		}
		if hullNumber != "" && t.HullNumber != hullNumber {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTaskPerHullRepo) Update(_ context.Context, t *model.TaskPerHull) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

// ── Mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays map[int64]*model.CompanyHoliday
	nextID   int64
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[int64]*model.CompanyHoliday)}
}

func (m *mockHolidayRepo) Create(_ context.Context, h *model.CompanyHoliday) error {
	m.nextID++
	h.ID = m.nextID
	m.holidays[h.ID] = h
	return nil
}

func (m *mockHolidayRepo) BatchCreate(_ context.Context, holidays []model.CompanyHoliday) error {
	for i := range holidays {
		m.nextID++
		holidays[i].ID = m.nextID
		h := holidays[i]
		m.holidays[h.ID] = &h
	}
	return nil
}

func (m *mockHolidayRepo) GetByID(_ context.Context, id int64) (*model.CompanyHoliday, error) {
	if h, ok := m.holidays[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHolidayRepo) List(_ context.Context) ([]model.CompanyHoliday, error) {
	var result []model.CompanyHoliday
	for _, h := range m.holidays {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HolidayDate.Before(result[j].HolidayDate) })
	return result, nil
}

func (m *mockHolidayRepo) ExistsOnDate(_ context.Context, date time.Time) (bool, error) {
	day := date.Format("2006-01-02")
	for _, h := range m.holidays {
		if h.HolidayDate.Format("2006-01-02") == day {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockHolidayRepo) Update(_ context.Context, h *model.CompanyHoliday) error {
	if _, ok := m.holidays[h.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.holidays[h.ID] = h
	return nil
}

func (m *mockHolidayRepo) Delete(_ context.Context, id int64) error {
	delete(m.holidays, id)
	return nil
}

// ── Mock ProductionScheduleRepository ──

type mockProductionScheduleRepo struct {
	slots  map[int64]*model.ProductionScheduleSlot
	nextID int64
}

func newMockProductionScheduleRepo() *mockProductionScheduleRepo {
	return &mockProductionScheduleRepo{slots: make(map[int64]*model.ProductionScheduleSlot)}
}

func (m *mockProductionScheduleRepo) Create(_ context.Context, slot *model.ProductionScheduleSlot) error {
	m.nextID++
	slot.ID = m.nextID
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockProductionScheduleRepo) GetByID(_ context.Context, id int64) (*model.ProductionScheduleSlot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductionScheduleRepo) List(_ context.Context) ([]model.ProductionScheduleSlot, error) {
	var result []model.ProductionScheduleSlot
	for _, s := range m.slots {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SlotNumber != result[j].SlotNumber {
			return result[i].SlotNumber < result[j].SlotNumber
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockProductionScheduleRepo) UpdateCell(_ context.Context, id int64, column string, value *string) error {
	slot, ok := m.slots[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch column {
	case "slot_number":
		if value == nil {
			slot.SlotNumber = ""
		} else {
			slot.SlotNumber = *value
		}
	case "hull_number":
		if value == nil {
			slot.HullNumber = ""
		} else {
			slot.HullNumber = *value
		}
	default:
		if value == nil {
			slot.SetStationDate(column, nil)
			return nil
		}
		t, err := time.Parse("2006-01-02", *value)
		if err != nil {
			return err
		}
		slot.SetStationDate(column, &t)
	}
	return nil
}

func (m *mockProductionScheduleRepo) Save(_ context.Context, slot *model.ProductionScheduleSlot) error {
	if _, ok := m.slots[slot.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockProductionScheduleRepo) Delete(_ context.Context, id int64) error {
	delete(m.slots, id)
	return nil
}

// ── Mock object store ──

type mockObjectStore struct {
	stored map[string][]byte
	putErr error
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{stored: make(map[string][]byte)}
}

func (m *mockObjectStore) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.stored[name] = data
	return nil
}

func (m *mockObjectStore) PublicURL(name string) string {
	return "http://store.local/boat-orders/" + name
}

// ── test repository aggregate ──

type testRepos struct {
	model              *mockModelRepo
	station            *mockStationRepo
	taskData           *mockTaskDataRepo
	scheduleGroup      *mockScheduleGroupRepo
	boatOrder          *mockBoatOrderRepo
	boatOrderOption    *mockBoatOrderOptionRepo
	boatOrderHeader    *mockBoatOrderHeaderRepo
	modelOption        *mockModelOptionRepo
	doNotShowOption    *mockDoNotShowOptionRepo
	taskPerHull        *mockTaskPerHullRepo
	holiday            *mockHolidayRepo
	productionSchedule *mockProductionScheduleRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		model:              newMockModelRepo(),
		station:            newMockStationRepo(),
		taskData:           newMockTaskDataRepo(),
		scheduleGroup:      newMockScheduleGroupRepo(),
		boatOrder:          newMockBoatOrderRepo(),
		boatOrderOption:    newMockBoatOrderOptionRepo(),
		boatOrderHeader:    newMockBoatOrderHeaderRepo(),
		modelOption:        newMockModelOptionRepo(),
		doNotShowOption:    newMockDoNotShowOptionRepo(),
		taskPerHull:        newMockTaskPerHullRepo(),
		holiday:            newMockHolidayRepo(),
		productionSchedule: newMockProductionScheduleRepo(),
	}
}

func (r *testRepos) aggregate() *repository.Repository {
	return &repository.Repository{
		Model:              r.model,
		Station:            r.station,
		TaskData:           r.taskData,
		ScheduleGroup:      r.scheduleGroup,
		BoatOrder:          r.boatOrder,
		BoatOrderOption:    r.boatOrderOption,
		BoatOrderHeader:    r.boatOrderHeader,
		ModelOption:        r.modelOption,
		DoNotShowOption:    r.doNotShowOption,
		TaskPerHull:        r.taskPerHull,
		Holiday:            r.holiday,
		ProductionSchedule: r.productionSchedule,
	}
}
