package service

import (
	"time"

	"github.com/inarasite/internal/db"
)

// samplePosts returns the bundled starter articles inserted on first run.
func samplePosts() []db.Post {
	return []db.Post{
		{
			Title:       "My First Startup: Lessons Learned from Building a Tech Company",
			Author:      "INARA TECH",
			Excerpt:     "Sharing the real story of building my first startup - the failures, successes, and everything I wish I knew before starting.",
			Thumbnail:   "/static/blog/startup-lessons.jpg",
			Tags:        "Startup,Entrepreneurship,Lessons Learned",
			PublishedAt: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			BaseViews:   1250,
			Content: `# My First Startup: Lessons Learned from Building a Tech Company

Starting a tech company is one of the most challenging yet rewarding experiences you can have. After building my first startup, I've learned countless lessons that I wish I knew before starting. Here's my honest account of the journey.

## The Beginning: From Idea to Reality

Every startup begins with an idea. Mine was born out of frustration with existing solutions in the market. I saw a gap that I believed I could fill, but I had no idea how complex the journey would be.

### Key Lesson #1: Validate Before You Build

The biggest mistake I made was building a product without proper market validation. I spent months developing features that nobody actually wanted.

**What I should have done:**
- Conducted more customer interviews
- Built a minimum viable product (MVP) first
- Tested the market demand before full development

## The Technical Challenges

Building a tech startup means wearing multiple hats - developer, designer, marketer, and CEO all at once.

### Key Lesson #2: Focus on Core Features

I tried to build everything at once, which led to:
- Delayed launch timeline
- Overcomplicated user experience
- Burnout and technical debt

**Better approach:**
- Start with one core feature
- Make it perfect before adding more
- Listen to user feedback before expanding

## The Business Side

Technical skills are only half the battle. Running a business requires completely different skills.

### Key Lesson #3: Learn Business Fundamentals

I wish I had spent more time learning about:
- Customer acquisition costs
- Unit economics
- Marketing and sales strategies
- Legal and financial aspects

## The Mental Game

Startup life is emotionally challenging. The highs are high, but the lows can be devastating.

### Key Lesson #4: Build a Support System

- Find mentors who've been through it
- Join startup communities
- Don't isolate yourself
- Celebrate small wins

## What I'd Do Differently

Looking back, here are the top 3 things I'd change:

1. **Start with customer validation** - Build something people actually want
2. **Focus on one thing** - Perfect your core offering before expanding
3. **Build in public** - Share your journey and get feedback early

## The Silver Lining

Despite the challenges, building a startup taught me invaluable skills:
- Problem-solving under pressure
- Leadership and team management
- Technical and business acumen
- Resilience and persistence

## Conclusion

Starting a company is hard, but it's also one of the most educational experiences you can have. The key is to learn from failures, stay focused, and never stop iterating.

*What's your startup story? I'd love to hear about your experiences and lessons learned.*`,
		},
		{
			Title:       "How I Raised $50K for My Startup: A Complete Guide",
			Author:      "INARA TECH",
			Excerpt:     "The complete story of how I raised my first $50K in funding - from pitch deck creation to investor meetings and everything in between.",
			Thumbnail:   "/static/blog/funding-guide.jpg",
			Tags:        "Funding,Startup,Investors,Pitch Deck",
			PublishedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			BaseViews:   2100,
			Content: `# How I Raised $50K for My Startup: A Complete Guide

Raising funding for your startup is one of the most challenging yet crucial milestones in an entrepreneur's journey. After successfully raising $50K for my startup, I want to share the complete process, including what worked, what didn't, and everything I learned along the way.

## The Preparation Phase

Before you even think about approaching investors, you need to prepare thoroughly. This phase can make or break your fundraising efforts.

### 1. Perfect Your Pitch Deck

Your pitch deck is your first impression. Here's what mine included:

- **Problem Statement**: Clear articulation of the problem you're solving
- **Solution**: Your unique approach to solving the problem
- **Market Size**: Total addressable market (TAM) and serviceable addressable market (SAM)
- **Business Model**: How you plan to make money
- **Traction**: Current metrics, user growth, revenue
- **Team**: Why your team is the right one to execute
- **Financial Projections**: 3-5 year projections
- **Ask**: How much you're raising and what you'll use it for

### 2. Know Your Numbers Inside and Out

Investors will ask detailed questions about:
- Customer acquisition cost (CAC)
- Lifetime value (LTV)
- Monthly recurring revenue (MRR)
- Churn rate
- Burn rate
- Runway

## The Fundraising Process

### Phase 1: Angel Investors and Friends & Family

I started with people who knew me personally:
- **Friends and family**: Raised $15K from close connections
- **Angel investors**: Found through networking events and LinkedIn
- **Accelerators**: Applied to local startup accelerators

### Phase 2: Seed Investors

For the remaining $35K, I approached:
- **Seed-stage VCs**: Focused on those investing in my industry
- **Corporate investors**: Companies with strategic interest
- **Crowdfunding**: Used platforms like AngelList and Republic

## What Worked

### 1. Building Relationships First

Instead of cold pitching, I:
- Attended startup events and meetups
- Built relationships with other founders
- Asked for introductions from mutual connections
- Provided value before asking for anything

### 2. Showing Traction

Investors want to see that your idea works:
- **User growth**: Demonstrated month-over-month growth
- **Revenue**: Showed consistent revenue generation
- **Customer testimonials**: Real feedback from paying customers
- **Partnerships**: Strategic partnerships with established companies

### 3. Being Transparent About Challenges

I was honest about:
- Current challenges and how I planned to solve them
- Competition and our competitive advantages
- Risks and mitigation strategies
- Previous failures and lessons learned

## What Didn't Work

### 1. Pitching Too Early

I made the mistake of pitching before having:
- A working product
- Paying customers
- Clear metrics
- A solid team

### 2. Not Following Up

Many investors said "no" initially but became interested after seeing our progress. I should have:
- Kept them updated on our progress
- Sent monthly updates
- Invited them to product demos
- Asked for feedback on our pitch

### 3. Focusing Only on Money

I learned that the right investor brings more than just money:
- Industry expertise
- Network and connections
- Strategic guidance
- Credibility and validation

## The Legal and Due Diligence Process

Once investors showed interest:

1. **Term Sheet**: Negotiated investment terms
2. **Due Diligence**: Investors reviewed our business thoroughly
3. **Legal Documentation**: Worked with lawyers on investment agreements
4. **Closing**: Finalized the investment and received funds

## Key Lessons Learned

### 1. Fundraising Takes Time

The entire process took 6 months from start to finish. Be patient and persistent.

### 2. Rejection is Normal

I pitched to 50+ investors and only 3 said yes. Don't take rejection personally.

### 3. Preparation is Everything

The more prepared you are, the more confident you'll be in meetings.

### 4. Network is Net Worth

Your network is your most valuable asset in fundraising.

## Conclusion

Raising $50K was one of the hardest things I've ever done, but it taught me invaluable lessons about business, persistence, and the importance of building relationships. The key is to start early, be prepared, and never give up.

*Are you currently fundraising? I'd love to hear about your experience and help if I can!*`,
		},
		{
			Title:       "Building in Public: Why We Share Our Journey",
			Author:      "INARA TECH",
			Excerpt:     "Why we started sharing our wins, failures, and everything in between - and what it has done for our consultancy.",
			Thumbnail:   "/static/blog/building-in-public.jpg",
			Tags:        "Startup,Culture,Transparency",
			PublishedAt: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			BaseViews:   0,
			Content: `# Building in Public: Why We Share Our Journey

Most consultancies keep their process behind closed doors. We decided to do the opposite.

## Why Transparency Wins

Sharing our work openly keeps us honest, attracts clients who value how we think, and turns every project into a public case study.

- **Trust**: Prospects see real work, not polished marketing
- **Feedback**: Early input catches mistakes before they ship
- **Community**: Other builders share their lessons back with us

## What We Share

We write about architecture decisions, estimates that went wrong, tools we adopted and abandoned, and the numbers behind our projects.

## What We Keep Private

Client confidential material stays private, always. Everything about our own process is fair game.

## Conclusion

Building in public is uncomfortable at first and invaluable after. If you run a small technology business, try sharing one honest post about your process.

*What would you share first? Tell us through the contact page.*`,
		},
	}
}
