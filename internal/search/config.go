package search

// Config declara, por entidad, qué se puede buscar y qué se proyecta.
//
// AllFields: campos elegibles en modo "all_categories".
// Mappings: categoría lógica -> campo físico, cuando el caller fija una sola.
// SelectRelated: relaciones que el RowSource debe joinear de antemano.
// ValuesFields: proyección exacta y ordenada del resultado (contrato con la
// capa de presentación; cambiar esto cambia lo que la UI recibe).
type Config struct {
	Entity        Entity
	AllFields     []Field
	Mappings      map[string]Field
	SelectRelated []string
	ValuesFields  []string
}

// Registry es la tabla de configuración de búsqueda. Se construye una sola
// vez al arrancar y después solo se lee; segura para requests concurrentes.
type Registry struct {
	byEntity map[Entity]Config
}

func (r Registry) Config(e Entity) (Config, bool) {
	c, ok := r.byEntity[e]
	return c, ok
}

func (r Registry) MustConfig(e Entity) Config {
	c, ok := r.byEntity[e]
	if !ok {
		panic("search: no config for entity " + string(e))
	}
	return c
}

// DefaultRegistry arma la tabla para las cinco entidades buscables.
func DefaultRegistry() Registry {
	text := func(name string) Field { return Field{Name: name, Kind: KindText} }
	date := func(name string) Field { return Field{Name: name, Kind: KindDate} }

	return Registry{byEntity: map[Entity]Config{
		EntityAppointment: {
			Entity: EntityAppointment,
			AllFields: []Field{
				text("pet_name"),
				text("owner_first_name"),
				text("owner_last_name"),
				text("vet_first_name"),
				text("vet_last_name"),
				text("reason"),
				text("status"),
				date("appointment_date"),
			},
			Mappings: map[string]Field{
				"pet_name":         text("pet_name"),
				"owner_name":       text("owner_last_name"),
				"vet_name":         text("vet_last_name"),
				"reason":           text("reason"),
				"status":           text("status"),
				"appointment_date": date("appointment_date"),
			},
			SelectRelated: []string{"pet", "owner", "vet"},
			ValuesFields: []string{
				"appointment_id",
				"pet_id", "pet_name",
				"owner_id", "owner_first_name", "owner_last_name",
				"vet_id", "vet_first_name", "vet_last_name",
				"appointment_date", "appointment_time",
				"reason", "status",
			},
		},

		EntityMedicalRecord: {
			Entity: EntityMedicalRecord,
			AllFields: []Field{
				text("pet_name"),
				text("vet_first_name"),
				text("vet_last_name"),
				text("diagnosis"),
				text("treatment"),
				text("prescribed_medication"),
				date("visit_date"),
			},
			Mappings: map[string]Field{
				"pet_name":   text("pet_name"),
				"vet_name":   text("vet_last_name"),
				"diagnosis":  text("diagnosis"),
				"treatment":  text("treatment"),
				"medication": text("prescribed_medication"),
				"visit_date": date("visit_date"),
			},
			SelectRelated: []string{"pet", "vet"},
			ValuesFields: []string{
				"record_id", "appointment_id",
				"pet_id", "pet_name",
				"vet_id", "vet_first_name", "vet_last_name",
				"visit_date", "diagnosis", "treatment",
				"prescribed_medication", "notes",
			},
		},

		EntityBilling: {
			Entity: EntityBilling,
			AllFields: []Field{
				text("pet_name"),
				text("owner_first_name"),
				text("owner_last_name"),
				text("payment_status"),
				text("payment_method"),
				text("total_amount"),
				date("payment_date"),
			},
			Mappings: map[string]Field{
				"pet_name":       text("pet_name"),
				"owner_name":     text("owner_last_name"),
				"payment_status": text("payment_status"),
				"payment_method": text("payment_method"),
				"total_amount":   text("total_amount"),
				"payment_date":   date("payment_date"),
			},
			SelectRelated: []string{"appointment", "pet", "owner"},
			ValuesFields: []string{
				"bill_id", "appointment_id",
				"pet_name", "owner_first_name", "owner_last_name",
				"total_amount", "payment_status", "payment_method",
				"payment_date",
			},
		},

		EntityPet: {
			Entity: EntityPet,
			AllFields: []Field{
				text("name"),
				text("species"),
				text("breed"),
				text("gender"),
				text("owner_first_name"),
				text("owner_last_name"),
				date("date_of_birth"),
			},
			Mappings: map[string]Field{
				"name":          text("name"),
				"species":       text("species"),
				"breed":         text("breed"),
				"gender":        text("gender"),
				"owner_name":    text("owner_last_name"),
				"date_of_birth": date("date_of_birth"),
			},
			SelectRelated: []string{"owner"},
			ValuesFields: []string{
				"pet_id", "name", "species", "breed",
				"date_of_birth", "gender", "weight",
				"owner_id", "owner_first_name", "owner_last_name",
			},
		},

		EntityOwner: {
			Entity: EntityOwner,
			AllFields: []Field{
				text("first_name"),
				text("last_name"),
				text("address"),
				text("phone_number"),
				text("email"),
				date("registration_date"),
			},
			Mappings: map[string]Field{
				"first_name":        text("first_name"),
				"last_name":         text("last_name"),
				"address":           text("address"),
				"phone":             text("phone_number"),
				"email":             text("email"),
				"registration_date": date("registration_date"),
			},
			ValuesFields: []string{
				"owner_id", "first_name", "last_name",
				"address", "phone_number", "email",
				"registration_date",
			},
		},
	}}
}
