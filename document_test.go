package docview_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docview-dev/docview"
)

func TestWithSpacing(t *testing.T) {
	t.Parallel()

	t.Run("returns a copy and leaves the receiver untouched", func(t *testing.T) {
		t.Parallel()
		original := &docview.Paragraph{
			Content: []docview.Run{&docview.Text{Content: "hello"}},
			Box:     docview.StandardBox(),
		}
		reboxed := original.WithSpacing(docview.QuoteInnerBox())

		assert.Equal(t, docview.StandardBox(), original.Box)

		paragraph, ok := reboxed.(*docview.Paragraph)
		require.True(t, ok)
		assert.Equal(t, docview.QuoteInnerBox(), paragraph.Box)
		assert.NotSame(t, original, paragraph)
		assert.Equal(t, original.Content, paragraph.Content)
	})

	t.Run("every block variant carries its spacing", func(t *testing.T) {
		t.Parallel()
		box := docview.Box{Padding: docview.Insets{Left: 5, Right: 5}}
		blocks := []docview.Block{
			&docview.Heading{Level: 1},
			&docview.Paragraph{},
			&docview.List{},
			&docview.CodeBlock{},
			&docview.Quote{},
			&docview.Rule{},
			&docview.Table{},
		}
		for _, block := range blocks {
			assert.Equal(t, box, block.WithSpacing(box).Spacing())
		}
	})
}

func TestNewImage(t *testing.T) {
	t.Parallel()

	target, err := url.Parse("https://example.com/pic.png")
	require.NoError(t, err)

	t.Run("zero sizes mean natural size", func(t *testing.T) {
		t.Parallel()
		image := docview.NewImage(target, 0, 0, "")
		assert.Equal(t, 0, image.Width)
		assert.Equal(t, 0, image.Height)
	})

	t.Run("negative sizes collapse to natural size", func(t *testing.T) {
		t.Parallel()
		image := docview.NewImage(target, -3, -7, "")
		assert.Equal(t, 0, image.Width)
		assert.Equal(t, 0, image.Height)
	})

	t.Run("declared sizes pass through", func(t *testing.T) {
		t.Parallel()
		image := docview.NewImage(target, 120, 80, "a chart")
		assert.Equal(t, 120, image.Width)
		assert.Equal(t, 80, image.Height)
		assert.Equal(t, "a chart", image.Tooltip)
	})
}

func TestDocumentWalk(t *testing.T) {
	t.Parallel()

	document := &docview.Document{
		Blocks: []docview.Block{
			&docview.Quote{
				Blocks: []docview.Block{
					&docview.List{
						Items: []docview.ListItem{
							{Blocks: []docview.Block{&docview.Paragraph{
								Content: []docview.Run{&docview.Text{Content: "deep"}},
							}}},
						},
					},
				},
			},
			&docview.Rule{},
		},
	}

	var count int
	document.Walk(func(docview.Block) { count++ })
	// Quote, nested list, the list item's paragraph, and the rule.
	assert.Equal(t, 4, count)
}

func TestWalkRuns(t *testing.T) {
	t.Parallel()

	target, err := url.Parse("https://example.com")
	require.NoError(t, err)

	runs := []docview.Run{
		&docview.Span{Style: docview.SpanBold, Children: []docview.Run{
			&docview.Span{Style: docview.SpanItalic, Children: []docview.Run{
				&docview.Text{Content: "nested"},
			}},
		}},
		&docview.Link{Target: target, Children: []docview.Run{
			&docview.Text{Content: "label"},
		}},
	}

	var count int
	docview.WalkRuns(runs, func(docview.Run) { count++ })
	assert.Equal(t, 5, count)
}

func TestDocumentRuns(t *testing.T) {
	t.Parallel()

	document := &docview.Document{
		Blocks: []docview.Block{
			&docview.Heading{Level: 1, Content: []docview.Run{&docview.Text{Content: "h"}}},
			&docview.Table{
				Rows: []docview.TableRow{
					{Cells: []docview.TableCell{{Content: []docview.Run{&docview.Text{Content: "cell"}}}}},
				},
			},
			&docview.Quote{Blocks: []docview.Block{
				&docview.Paragraph{Content: []docview.Run{&docview.Text{Content: "quoted"}}},
			}},
		},
	}

	var texts []string
	document.Runs(func(run docview.Run) {
		if text, ok := run.(*docview.Text); ok {
			texts = append(texts, text.Content)
		}
	})
	assert.Equal(t, []string{"h", "cell", "quoted"}, texts)
}
