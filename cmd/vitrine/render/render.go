package render

type Renderer interface {
	RenderItemList(view ItemListView) string
	RenderItemDetail(view ItemDetailView) string
}

type ItemListView struct {
	Items      []ItemListItem
	EmptyTitle string
	EmptyHint  string
}

type ItemListItem struct {
	ID         int
	Name       string
	Designer   string
	Year       int
	Categories []string
	Favorite   bool
}

func (v ItemListView) IsEmpty() bool {
	return len(v.Items) == 0
}

type ItemDetailView struct {
	ID         int
	Name       string
	Designer   string
	Year       int
	Categories []string
	Favorite   bool
	Top        []string
	Heart      []string
	Base       []string
	Story      string
	ShareURL   string
}
