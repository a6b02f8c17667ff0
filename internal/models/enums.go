package models

// NoticeCategory is the kind of classified a notice represents.
type NoticeCategory string

const (
	CategoryFound NoticeCategory = "found"
	CategoryFree  NoticeCategory = "free"
	CategoryLost  NoticeCategory = "lost"
	CategorySell  NoticeCategory = "sell"
)

// NoticeSex is the sex recorded on a notice. Defaults to SexUnknown.
type NoticeSex string

const (
	SexFemale   NoticeSex = "female"
	SexMale     NoticeSex = "male"
	SexMultiple NoticeSex = "multiple"
	SexUnknown  NoticeSex = "unknown"
)

// Species is the animal kind a notice is about.
type Species string

const (
	SpeciesDog       Species = "dog"
	SpeciesCat       Species = "cat"
	SpeciesMonkey    Species = "monkey"
	SpeciesBird      Species = "bird"
	SpeciesSnake     Species = "snake"
	SpeciesTurtle    Species = "turtle"
	SpeciesLizard    Species = "lizard"
	SpeciesFrog      Species = "frog"
	SpeciesFish      Species = "fish"
	SpeciesAnts      Species = "ants"
	SpeciesBees      Species = "bees"
	SpeciesButterfly Species = "butterfly"
	SpeciesSpider    Species = "spider"
	SpeciesScorpion  Species = "scorpion"
)

// PetSpecies is the narrower species set allowed on a user's own pet.
type PetSpecies string

const (
	PetSpeciesDog   PetSpecies = "dog"
	PetSpeciesCat   PetSpecies = "cat"
	PetSpeciesFish  PetSpecies = "fish"
	PetSpeciesBird  PetSpecies = "bird"
	PetSpeciesOther PetSpecies = "other"
)

// PetSex is the sex recorded on a user's pet.
type PetSex string

const (
	PetSexMale    PetSex = "male"
	PetSexFemale  PetSex = "female"
	PetSexUnknown PetSex = "unknown"
)

var (
	noticeCategories = []NoticeCategory{CategoryFound, CategoryFree, CategoryLost, CategorySell}
	noticeSexes      = []NoticeSex{SexFemale, SexMale, SexMultiple, SexUnknown}
	species          = []Species{
		SpeciesDog, SpeciesCat, SpeciesMonkey, SpeciesBird, SpeciesSnake, SpeciesTurtle,
		SpeciesLizard, SpeciesFrog, SpeciesFish, SpeciesAnts, SpeciesBees, SpeciesButterfly,
		SpeciesSpider, SpeciesScorpion,
	}
	petSpecies = []PetSpecies{PetSpeciesDog, PetSpeciesCat, PetSpeciesFish, PetSpeciesBird, PetSpeciesOther}
	petSexes   = []PetSex{PetSexMale, PetSexFemale, PetSexUnknown}
)

// NoticeCategories returns the categories in the order the API lists them.
func NoticeCategories() []NoticeCategory {
	return append([]NoticeCategory(nil), noticeCategories...)
}

// NoticeSexes returns the sex options in the order the API lists them.
func NoticeSexes() []NoticeSex {
	return append([]NoticeSex(nil), noticeSexes...)
}

// AllSpecies returns the notice species list.
func AllSpecies() []Species {
	return append([]Species(nil), species...)
}

func AllPetSpecies() []PetSpecies {
	return append([]PetSpecies(nil), petSpecies...)
}

func AllPetSexes() []PetSex {
	return append([]PetSex(nil), petSexes...)
}

func (c NoticeCategory) Valid() bool { return contains(noticeCategories, c) }
func (s NoticeSex) Valid() bool      { return contains(noticeSexes, s) }
func (s Species) Valid() bool        { return contains(species, s) }
func (s PetSpecies) Valid() bool     { return contains(petSpecies, s) }
func (s PetSex) Valid() bool         { return contains(petSexes, s) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
