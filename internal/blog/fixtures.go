package blog

const team = "Career Portfolio Team"

var featuredPost = Post{
	ID:       1,
	Title:    "10 Resume Mistakes That Cost You Job Interviews",
	Excerpt:  "Discover the most common resume mistakes that recruiters see every day and learn how to avoid them to increase your chances of landing interviews.",
	Author:   team,
	Date:     "2 days ago",
	ReadTime: "8 min read",
	Category: "Resume Tips",
	Image:    "/assets/blog/blog-main/21140.jpg",
}

var fixturePosts = []Post{
	{
		ID: 2, Title: "How to Negotiate Your Salary: A Complete Guide",
		Excerpt: "Learn proven strategies to negotiate better compensation packages and maximize your earning potential.",
		Author:  team, Date: "4 days ago", ReadTime: "12 min read", Category: "Career Advice",
		Image: "/assets/blog/employee-showing-appreciation-each-other/employee-showing-appreciation-each-other.jpg", Views: 892,
	},
	{
		ID: 3, Title: "Building a Portfolio That Gets You Hired",
		Excerpt: "Step-by-step guide to creating a compelling portfolio that showcases your skills and attracts employers.",
		Author:  team, Date: "1 week ago", ReadTime: "10 min read", Category: "Portfolio Tips",
		Image: "/assets/blog/group-businesspeople-using-laptop-while-working-document/group-businesspeople-using-laptop-while-working-document.jpg", Views: 1247,
	},
	{
		ID: 4, Title: "Remote Work Interview Tips for 2024",
		Excerpt: "Master the art of remote job interviews with these essential tips and technical considerations.",
		Author:  team, Date: "1 week ago", ReadTime: "6 min read", Category: "Interview Prep",
		Image: "/assets/blog/happy-female-leader-meeting-with-employees/happy-female-leader-meeting-with-employees.jpg", Views: 673,
	},
	{
		ID: 5, Title: "Career Change at 40: Success Stories and Strategies",
		Excerpt: "Inspiring stories and practical advice for professionals making career transitions later in life.",
		Author:  team, Date: "2 weeks ago", ReadTime: "15 min read", Category: "Career Advice",
		Image: "/assets/blog/employee-showing-appreciation-each-other/2149357544.jpg", Views: 1456,
	},
	{
		ID: 6, Title: "LinkedIn Optimization: Get Noticed by Recruiters",
		Excerpt: "Optimize your LinkedIn profile to increase visibility and attract job opportunities.",
		Author:  team, Date: "2 weeks ago", ReadTime: "9 min read", Category: "Personal Branding",
		Image: "/assets/blog/group-businesspeople-using-laptop-while-working-document/2147838546 (1).jpg", Views: 985,
	},
	{
		ID: 7, Title: "Tech Industry Trends: Skills in Demand for 2024",
		Excerpt: "Stay ahead of the curve with insights into the most sought-after tech skills and emerging opportunities.",
		Author:  team, Date: "3 weeks ago", ReadTime: "11 min read", Category: "Industry Insights",
		Image: "/assets/blog/happy-female-leader-meeting-with-employees/2129.jpg", Views: 734,
	},
	{
		ID: 8, Title: "Mastering Behavioral Interview Questions",
		Excerpt: "Learn the STAR method and practice responses to common behavioral interview questions.",
		Author:  team, Date: "3 weeks ago", ReadTime: "14 min read", Category: "Interview Prep",
		Image: "/assets/blog/employee-showing-appreciation-each-other/2149357544 (1).jpg", Views: 1123,
	},
	{
		ID: 9, Title: "Freelancing vs Full-time: Making the Right Choice",
		Excerpt: "Compare the pros and cons of freelancing versus traditional employment to make an informed decision.",
		Author:  team, Date: "1 month ago", ReadTime: "13 min read", Category: "Career Advice",
		Image: "/assets/blog/group-businesspeople-using-laptop-while-working-document/2147838546 (1).jpg", Views: 567,
	},
}
