package gamedata

// MultiLangText carries the four upstream translations of a title or
// description. A missing translation stays nil so "untranslated" and
// "empty string" remain distinct all the way to the persisted row.
type MultiLangText struct {
	FR *string
	EN *string
	ES *string
	PT *string
}

// multiLang reads an optional multi-language sub-object. Absent, null and
// empty-object all yield nil: no dependent row is produced for them.
func (r RawRecord) multiLang(key string) *MultiLangText {
	obj, ok := r.object(key)
	if !ok {
		return nil
	}
	return &MultiLangText{
		FR: obj.optionalString("fr"),
		EN: obj.optionalString("en"),
		ES: obj.optionalString("es"),
		PT: obj.optionalString("pt"),
	}
}
