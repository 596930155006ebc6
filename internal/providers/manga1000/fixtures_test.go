package manga1000

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// ワンピース, percent-encoded.
const onePieceEncoded = "%E3%83%AF%E3%83%B3%E3%83%94%E3%83%BC%E3%82%B9"

const detailPage = `<html><head>
<script>
var vm = {};
vm.NumSubs = 42;
</script>
</head><body>
<div class="entry-content">
  <figure class="wp-block-image"><img src="https://manga1000.com/wp-content/op.jpg" alt="cover"></figure>
  <figure class="wp-block-image"><img src="https://manga1000.com/wp-content/other.jpg"></figure>
  <p class="has-text-color">作者: 尾田栄一郎 &amp; 集英社<br>ジャンル: 少年</p>
  <p>海賊王を&quot;目指す&quot;物語</p>
</div>
<span class="tags-links"><a href="/tag/shonen">少年</a><a href="/tag/adventure">冒険</a></span>
</body></html>`

const chapterListPage = `<html><body>
<table>
  <tr><td><a href="https://manga1000.com/` + onePieceEncoded + `-raw-%E3%80%9012%E3%80%91/">第12話</a></td></tr>
  <tr><td><a href="https://manga1000.com/` + onePieceEncoded + `-raw-%E3%80%90%E7%AC%AC3%E8%A9%B1%E3%80%91/">第3話</a></td></tr>
  <tr><td><a href="https://manga1000.com/one-piece-extra/">extra</a></td></tr>
</table>
</body></html>`

const chapterPage = `<html><body>
<figure class="wp-block-image"><img src="https://manga1000.com/lazy.gif" data-src="https://cdn.example.com/1.jpg"></figure>
<figure class="wp-block-image"><img src="https://cdn.example.com/2.jpg"></figure>
<figure class="wp-block-image"><img src="https://cdn.example.com/3.jpg" data-src=""></figure>
<img src="https://manga1000.com/banner.jpg">
</body></html>`

const listingPage = `<html><body>
<article class="post">
  <div class="featured-thumb">
    <a href="https://manga1000.com/` + onePieceEncoded + `/"><img src="https://manga1000.com/wp-content/op.jpg" alt="ワンピース (One Piece)" date="2020-03-04"></a>
  </div>
</article>
<article class="post">
  <div class="featured-thumb">
    <a href="https://manga1000.com/naruto/"><img src="https://manga1000.com/wp-content/naruto.jpg" alt="NARUTO" date="garbage"></a>
  </div>
</article>
<nav class="pagination">
  <span class="page-numbers current">1</span>
  <a class="page-numbers" href="https://manga1000.com/page/2/">2</a>
</nav>
</body></html>`

const lastListingPage = `<html><body>
<article class="post">
  <div class="featured-thumb">
    <a href="https://manga1000.com/naruto/"><img src="https://manga1000.com/wp-content/naruto.jpg" alt="NARUTO" date="Wed Mar 04 2020"></a>
  </div>
</article>
<nav class="pagination">
  <a class="page-numbers" href="https://manga1000.com/page/2/">2</a>
  <span class="page-numbers current">3</span>
</nav>
</body></html>`

const brokenListingPage = `<html><body>
<article><div class="featured-thumb"><span>no link here</span></div></article>
</body></html>`

const homeScriptPage = `<html><body>
<script>
vm.HotUpdateJSON = [{"IndexName":"ワンピース","Date":"2020-03-05T00:00:00+00:00"},{"IndexName":"naruto","Date":"2020-03-01T00:00:00+00:00"},{"IndexName":"bleach","Date":"2020-03-06T00:00:00+00:00"}];
</script>
</body></html>`

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	return doc
}
