package fixture

import (
	"time"

	"chucklechain/domain"
)

// seed builds the demo dataset. Timestamps are offsets from process start so
// relative times in the UI stay plausible across runs.
func seed() *Store {
	now := time.Now()

	johndoe := domain.User{
		ID:             "user1",
		Username:       "johndoe",
		ProfilePicture: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=faces",
	}
	janedoe := domain.User{
		ID:             "user2",
		Username:       "janedoe",
		ProfilePicture: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=faces",
	}
	bobsmith := domain.User{
		ID:             "user3",
		Username:       "bobsmith",
		ProfilePicture: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=150&h=150&fit=crop&crop=faces",
	}
	alicejones := domain.User{
		ID:             "user4",
		Username:       "alicejones",
		ProfilePicture: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=150&h=150&fit=crop&crop=faces",
	}

	posts := []domain.Post{
		{
			ID:        "post1",
			User:      janedoe,
			Text:      "When you finally fix that bug after hours of debugging",
			Image:     "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-1 * time.Hour),
			Likes:     42,
			IsLiked:   true,
			Comments: []domain.Comment{
				{ID: "comment1", User: "bobsmith", Text: "Been there! 😂"},
				{ID: "comment2", User: "johndoe", Text: "So relatable!"},
			},
		},
		{
			ID:        "post2",
			User:      bobsmith,
			Text:      "Monday morning mood",
			Image:     "https://images.unsplash.com/photo-1517849845537-4d257902454a?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-24 * time.Hour),
			Likes:     24,
			Comments: []domain.Comment{
				{ID: "comment3", User: "janedoe", Text: "I feel this in my soul"},
			},
		},
		{
			ID:        "post3",
			User:      alicejones,
			Text:      "When someone says they'll be there in 5 minutes",
			Image:     "https://images.unsplash.com/photo-1513245543132-31f507417b26?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-48 * time.Hour),
			Likes:     56,
			Comments:  []domain.Comment{},
		},
	}

	profiles := map[string]domain.UserProfile{
		"johndoe": {
			User:      johndoe,
			FullName:  "John Doe",
			Bio:       "Meme enthusiast and professional procrastinator",
			Website:   "https://example.com",
			Followers: 245,
			Following: 123,
			Posts: []domain.Post{
				{
					ID:        "post4",
					User:      johndoe,
					Text:      "When the code works on the first try",
					Image:     "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?w=600&h=400&fit=crop",
					CreatedAt: now.Add(-72 * time.Hour),
					Likes:     78,
					Comments: []domain.Comment{
						{ID: "comment4", User: "bobsmith", Text: "Never happened to me 😅"},
					},
				},
			},
		},
		"janedoe": {
			User:        janedoe,
			FullName:    "Jane Doe",
			Bio:         "Digital artist and meme creator",
			Website:     "https://janedoe.com",
			Followers:   1024,
			Following:   567,
			IsFollowing: true,
			Posts:       []domain.Post{posts[0]},
		},
		"bobsmith": {
			User:        bobsmith,
			FullName:    "Bob Smith",
			Bio:         "Just here for the memes",
			Followers:   512,
			Following:   256,
			IsFollowing: true,
			Posts:       []domain.Post{posts[1]},
		},
		"alicejones": {
			User:      alicejones,
			FullName:  "Alice Jones",
			Bio:       "Meme queen 👑",
			Website:   "https://alicejones.dev",
			Followers: 789,
			Following: 345,
			Posts:     []domain.Post{posts[2]},
		},
	}

	conversations := []domain.Conversation{
		{
			ID:   "conv1",
			User: janedoe,
			Messages: []domain.Message{
				{ID: "msg1", SenderID: janedoe.ID, Text: "Hey, did you see that new meme format?", Timestamp: now.Add(-60 * time.Minute)},
				{ID: "msg2", SenderID: johndoe.ID, Text: "Yeah, it's hilarious! I'm going to make one later", Timestamp: now.Add(-58 * time.Minute)},
				{ID: "msg3", SenderID: janedoe.ID, Text: "Can't wait to see it!", Timestamp: now.Add(-56 * time.Minute)},
			},
			LastMessage: domain.LastMessage{Text: "Can't wait to see it!", Timestamp: now.Add(-56 * time.Minute)},
		},
		{
			ID:   "conv2",
			User: bobsmith,
			Messages: []domain.Message{
				{ID: "msg4", SenderID: johndoe.ID, Text: "That meme you posted yesterday was gold", Timestamp: now.Add(-24 * time.Hour)},
				{ID: "msg5", SenderID: bobsmith.ID, Text: "Thanks! I spent way too much time on it 😂", Timestamp: now.Add(-23 * time.Hour)},
			},
			LastMessage: domain.LastMessage{Text: "Thanks! I spent way too much time on it 😂", Timestamp: now.Add(-23 * time.Hour)},
		},
		{
			ID:   "conv3",
			User: alicejones,
			Messages: []domain.Message{
				{ID: "msg6", SenderID: alicejones.ID, Text: "Do you have the template for that meme?", Timestamp: now.Add(-48 * time.Hour)},
				{ID: "msg7", SenderID: johndoe.ID, Text: "Sure, I'll send it over!", Timestamp: now.Add(-47 * time.Hour)},
			},
			LastMessage: domain.LastMessage{Text: "Sure, I'll send it over!", Timestamp: now.Add(-47 * time.Hour)},
		},
	}

	notifications := []domain.Notification{
		{ID: "notif1", Type: domain.NotificationLike, User: janedoe, Timestamp: now.Add(-1 * time.Hour)},
		{ID: "notif2", Type: domain.NotificationComment, User: bobsmith, Content: "This is hilarious! 😂", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "notif3", Type: domain.NotificationFollow, User: alicejones, Timestamp: now.Add(-24 * time.Hour)},
		{ID: "notif4", Type: domain.NotificationLike, User: bobsmith, Timestamp: now.Add(-48 * time.Hour)},
		{ID: "notif5", Type: domain.NotificationComment, User: janedoe, Content: "I can relate to this so much!", Timestamp: now.Add(-72 * time.Hour)},
	}

	trending := []domain.Post{
		{
			ID:        "trending1",
			User:      janedoe,
			Text:      "This is what peak performance looks like",
			Image:     "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-12 * time.Hour),
			Likes:     1204,
			Comments: []domain.Comment{
				{ID: "tcomment1", User: "bobsmith", Text: "I can't stop laughing 😂"},
				{ID: "tcomment2", User: "alicejones", Text: "This is gold!"},
			},
		},
		{
			ID:        "trending2",
			User:      bobsmith,
			Text:      "When you realize it's only Tuesday",
			Image:     "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-18 * time.Hour),
			Likes:     982,
			IsLiked:   true,
			Comments: []domain.Comment{
				{ID: "tcomment3", User: "johndoe", Text: "Every. Single. Week."},
			},
		},
		{
			ID:        "trending3",
			User:      alicejones,
			Text:      "Programming in a nutshell",
			Image:     "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-24 * time.Hour),
			Likes:     756,
			Comments:  []domain.Comment{},
		},
	}

	fresh := []domain.Post{
		{
			ID:        "fresh1",
			User:      alicejones,
			Text:      "Just made this fresh meme",
			Image:     "https://images.unsplash.com/photo-1543852786-1cf6624b9987?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-30 * time.Minute),
			Likes:     12,
			Comments:  []domain.Comment{},
		},
		{
			ID:        "fresh2",
			User:      janedoe,
			Text:      "Hot off the press",
			Image:     "https://images.unsplash.com/photo-1425082661705-1834bfd09dca?w=600&h=400&fit=crop",
			CreatedAt: now.Add(-2 * time.Hour),
			Likes:     45,
			Comments: []domain.Comment{
				{ID: "fcomment1", User: "johndoe", Text: "First! 😎"},
			},
		},
	}

	categories := map[string][]domain.Post{
		"entertainment": {
			{
				ID:        "ent1",
				User:      bobsmith,
				Text:      "Movie night expectations vs reality",
				Image:     "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-2 * 24 * time.Hour),
				Likes:     342,
				Category:  "entertainment",
			},
			{
				ID:        "ent2",
				User:      janedoe,
				Text:      "When the movie adaptation ruins your favorite book",
				Image:     "https://images.unsplash.com/photo-1585951237318-9ea5e175b891?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-3 * 24 * time.Hour),
				Likes:     256,
				IsLiked:   true,
				Category:  "entertainment",
			},
		},
		"sports": {
			{
				ID:        "sports1",
				User:      alicejones,
				Text:      "Me after exercising for 5 minutes",
				Image:     "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-24 * time.Hour),
				Likes:     189,
				Category:  "sports",
			},
		},
		"gaming": {
			{
				ID:        "gaming1",
				User:      johndoe,
				Text:      "When you finally beat that boss after 50 attempts",
				Image:     "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-4 * 24 * time.Hour),
				Likes:     421,
				Category:  "gaming",
			},
			{
				ID:        "gaming2",
				User:      bobsmith,
				Text:      "Gamers will understand",
				Image:     "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-5 * 24 * time.Hour),
				Likes:     315,
				IsLiked:   true,
				Category:  "gaming",
			},
		},
		"technology": {
			{
				ID:        "tech1",
				User:      janedoe,
				Text:      "Debugging be like",
				Image:     "https://images.unsplash.com/photo-1518770660439-4636190af475?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-3 * 24 * time.Hour),
				Likes:     502,
				Category:  "technology",
			},
		},
	}

	hashtags := map[string][]domain.Post{
		"MemeMonday": {
			{
				ID:        "mm1",
				User:      bobsmith,
				Text:      "Starting the week right #MemeMonday",
				Image:     "https://images.unsplash.com/photo-1526047932273-341f2a7631f9?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-24 * time.Hour),
				Likes:     234,
			},
		},
		"FunnyFriday": {
			{
				ID:        "ff1",
				User:      alicejones,
				Text:      "Friday mood #FunnyFriday",
				Image:     "https://images.unsplash.com/photo-1533738363-b7f9aef128ce?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-3 * 24 * time.Hour),
				Likes:     187,
				IsLiked:   true,
			},
		},
		"DadJokes": {
			{
				ID:        "dj1",
				User:      johndoe,
				Text:      "My favorite dad joke #DadJokes",
				Image:     "https://images.unsplash.com/photo-1507808973436-a4ed7b5e87c9?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-5 * 24 * time.Hour),
				Likes:     156,
			},
		},
		"ProgrammerHumor": {
			{
				ID:        "ph1",
				User:      janedoe,
				Text:      "Every programmer knows this feeling #ProgrammerHumor",
				Image:     "https://images.unsplash.com/photo-1571171637578-41bc2dd41cd2?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-2 * 24 * time.Hour),
				Likes:     423,
			},
			{
				ID:        "ph2",
				User:      bobsmith,
				Text:      "When your code works on the first try #ProgrammerHumor",
				Image:     "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=600&h=400&fit=crop",
				CreatedAt: now.Add(-4 * 24 * time.Hour),
				Likes:     378,
				IsLiked:   true,
			},
		},
	}

	return &Store{
		currentUser:   johndoe,
		posts:         posts,
		profiles:      profiles,
		conversations: conversations,
		notifications: notifications,
		trending:      trending,
		fresh:         fresh,
		categories:    categories,
		hashtags:      hashtags,
	}
}
