package fixture

import "github.com/five82/postboard/internal/posts"

// SamplePosts returns the built-in posts served when no file is given.
func SamplePosts() []posts.Post {
	return []posts.Post{
		{
			Title: "sunt aut facere repellat provident occaecati excepturi optio reprehenderit",
			Body:  "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto",
		},
		{
			Title: "qui est esse",
			Body:  "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque\nfugiat blanditiis voluptate porro vel nihil molestiae ut reiciendis\nqui aperiam non debitis possimus qui neque nisi nulla",
		},
		{
			Title: "ea molestias quasi exercitationem repellat qui ipsa sit aut",
			Body:  "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad\nvoluptatem doloribus vel accusantium quis pariatur\nmolestiae porro eius odio et labore et velit aut",
		},
		{
			Title: "eum et est occaecati",
			Body:  "ullam et saepe reiciendis voluptatem adipisci\nsit amet autem assumenda provident rerum culpa\nquis hic commodi nesciunt rem tenetur doloremque ipsam iure\nquis sunt voluptatem rerum illo velit",
		},
		{
			Title: "nesciunt quas odio",
			Body:  "repudiandae veniam quaerat sunt sed\nalias aut fugiat sit autem sed est\nvoluptatem omnis possimus esse voluptatibus quis\nest aut tenetur dolor neque",
		},
		{
			Title: "dolorem eum magni eos aperiam quia",
			Body:  "ut aspernatur corporis harum nihil quis provident sequi\nmollitia nobis aliquid molestiae\nperspiciatis et ea nemo ab reprehenderit accusantium quas\nvoluptate dolores velit et doloremque molestiae",
		},
		{
			Title: "magnam facilis autem",
			Body:  "dolore placeat quibusdam ea quo vitae\nmagni quis enim qui quis quo nemo aut saepe\nquidem repellat excepturi ut quia\nsunt ut sequi eos ea sed quas",
		},
		{
			Title: "Édition spéciale: 100% / rien?",
			Body:  "A title with accents, a slash and reserved URL characters.",
		},
	}
}
