package cache

import "sort"

// Entity nombre de la entidad mutada. Coincide con la tabla de la base.
type Entity string

// Entidades con lecturas cacheadas.
const (
	EntityRoom          Entity = "rooms"
	EntityRoomType      Entity = "room_types"
	EntityGuest         Entity = "guests"
	EntityGuestDocument Entity = "guest_documents"
	EntityReservation   Entity = "reservations"
)

// Mutation tipo de cambio.
type Mutation string

// Mutaciones.
const (
	MutationCreate Mutation = "create"
	MutationUpdate Mutation = "update"
	MutationDelete Mutation = "delete"
	MutationStatus Mutation = "status"
)

// Event mutación exitosa. ParentID es el dueño cuando aplica (huésped de un documento).
type Event struct {
	Entity   Entity
	Mutation Mutation
	ID       string
	ParentID string
}

// KeyFunc claves exactas a borrar para un evento.
type KeyFunc func(Event) []string

// Rule claves y prefijos que se invalidan ante las mutaciones de On (vacío = todas).
type Rule struct {
	On       []Mutation
	Keys     KeyFunc
	Prefixes []string
}

func (r Rule) matches(m Mutation) bool {
	if len(r.On) == 0 {
		return true
	}
	for _, on := range r.On {
		if on == m {
			return true
		}
	}
	return false
}

// Policy reglas de una entidad y los prefijos que se descartan completos en una resincronización.
type Policy struct {
	Rules  []Rule
	Resync []string
}

// Table entidad → política. Es la única fuente de verdad de qué lecturas depende cada mutación.
type Table map[Entity]Policy

var (
	roomByID   KeyFunc    = func(e Event) []string { return idKey(e, RoomDetailKey) }
	dashboard  KeyFunc    = func(Event) []string { return []string{KeyDashboardSummary} }
	mutateByID []Mutation = []Mutation{MutationUpdate, MutationStatus, MutationDelete}
)

// DefaultTable tabla de invalidación del hotel.
func DefaultTable() Table {
	return Table{
		EntityRoom: {
			Rules: []Rule{
				{Keys: dashboard, Prefixes: []string{PrefixRoomsList}},
				{On: mutateByID, Keys: roomByID},
			},
			Resync: []string{PrefixRoomsList, PrefixRoomsDetail, KeyDashboardSummary},
		},
		EntityRoomType: {
			Rules: []Rule{
				{Prefixes: []string{PrefixRoomTypesList}},
				// las habitaciones embeben su tipo
				{On: mutateByID, Keys: func(e Event) []string { return idKey(e, RoomTypeDetailKey) },
					Prefixes: []string{PrefixRoomsList, PrefixRoomsDetail}},
			},
			Resync: []string{PrefixRoomTypesList, PrefixRoomTypesDetail, PrefixRoomsList, PrefixRoomsDetail},
		},
		EntityGuest: {
			Rules: []Rule{
				// las reservas muestran el nombre del huésped
				{On: mutateByID, Keys: func(e Event) []string { return idKey(e, GuestDetailKey) },
					Prefixes: []string{PrefixReservationsItem}},
				{On: []Mutation{MutationDelete}, Keys: func(e Event) []string { return idKey(e, GuestDocumentsKey) }},
			},
			Resync: []string{PrefixGuestsDetail, PrefixReservationsItem},
		},
		EntityGuestDocument: {
			Rules: []Rule{
				{Keys: func(e Event) []string {
					if e.ParentID == "" {
						return nil
					}
					return []string{GuestDocumentsKey(e.ParentID)}
				}},
			},
			Resync: []string{PrefixGuestDocuments},
		},
		EntityReservation: {
			Rules: []Rule{
				{Keys: dashboard},
				{On: mutateByID, Keys: func(e Event) []string { return idKey(e, ReservationDetailKey) }},
			},
			Resync: []string{PrefixReservationsItem, KeyDashboardSummary},
		},
	}
}

// Plan claves y prefijos que corresponden a un evento según la tabla.
func (t Table) Plan(e Event) (keys []string, prefixes []string) {
	policy, ok := t[e.Entity]
	if !ok {
		return nil, nil
	}
	for _, r := range policy.Rules {
		if !r.matches(e.Mutation) {
			continue
		}
		if r.Keys != nil {
			keys = append(keys, r.Keys(e)...)
		}
		prefixes = append(prefixes, r.Prefixes...)
	}
	return keys, prefixes
}

// Tables nombres de tabla con política, ordenados. Son las tablas a escuchar en la base.
func (t Table) Tables() []string {
	out := make([]string, 0, len(t))
	for e := range t {
		out = append(out, string(e))
	}
	sort.Strings(out)
	return out
}

func idKey(e Event, fn func(string) string) []string {
	if e.ID == "" {
		return nil
	}
	return []string{fn(e.ID)}
}
